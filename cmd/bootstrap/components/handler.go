package components

import (
	"commerce-actions/internal/handler"
	"commerce-actions/internal/handler/api"
	"commerce-actions/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewActionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
