package bootstrap

import (
	"commerce-actions/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.AdapterModule,
	components.UseCaseModule,
	components.ActionModule,
	components.HandlerModule,
)
