package bootstrap

import (
	"time"

	"commerce-actions/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCalendarLocation,
	),
)

// NewCalendarLocation is the zone call windows and appointment dates are
// interpreted in.
func NewCalendarLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Calendar.Location()
}
