package bootstrap

import (
	"offerbee-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.UpstreamConfig { return cfg.Upstream },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
	),
)
