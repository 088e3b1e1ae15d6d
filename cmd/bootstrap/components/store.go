package components

import (
	"context"

	"offerbee-storefront/internal/infra/catalog"
	"offerbee-storefront/internal/infra/sessionstore"
	"offerbee-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			sessionstore.New,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			catalog.NewStore,
			fx.As(new(shared.CatalogReadStore)),
		),
	),
	fx.Invoke(runSessionSweeper),
)

// runSessionSweeper ties the store's expiry sweep to the app lifecycle.
func runSessionSweeper(lc fx.Lifecycle, store shared.SessionStore) {
	s, ok := store.(*sessionstore.Store)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go s.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
