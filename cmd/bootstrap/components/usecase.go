package components

import (
	"log/slog"
	"time"

	"commerce-actions/internal/pkg/clock"
	"commerce-actions/internal/pkg/config"
	"commerce-actions/internal/usecase"
	"commerce-actions/internal/usecase/commands"
	"commerce-actions/internal/usecase/queries"
	"commerce-actions/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSchedulingCommands,
		commands.NewDiscountUseCase,
		commands.NewCRMUseCase,
		commands.NewCartUseCase,
		commands.NewAppointmentUseCase,
		commands.NewInstructionUseCase,
		commands.NewPromotionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewInventoryQueries,
		queries.NewRecommendationQueries,
		queries.NewAppointmentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSchedulingCommands(
	cfg config.Config,
	cal commands.Calendar,
	mailer commands.Mailer,
	locker commands.Locker,
	loc *time.Location,
	timeout shared.AdapterTimeout,
	logger *slog.Logger,
) commands.SchedulingCommands {
	return commands.NewSchedulingUseCase(cal, mailer, locker, loc, cfg.Calendar.EventSummary, timeout, logger)
}
