package bootstrap

import (
	"offerbee-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.GatewayModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
