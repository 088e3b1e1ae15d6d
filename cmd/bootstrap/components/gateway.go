package components

import (
	"offerbee-storefront/internal/infra/upstream"
	"offerbee-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

// GatewayModule wires the upstream REST client behind both gateway
// interfaces. One client instance serves both: the split is about what
// callers may see, not about transport.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			upstream.NewClient,
			fx.As(new(shared.AuthGateway)),
			fx.As(new(shared.VoucherGateway)),
		),
	),
)
