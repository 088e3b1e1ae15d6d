package queries

import (
	"offerbee-storefront/internal/domain/cart"
	"offerbee-storefront/internal/pkg/clock"
	"offerbee-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartQueries reads the session-local cart state for rendering. No
// network and no mutation: views are built from whatever the session
// holds right now.
type CartQueries interface {
	View(sessionID uuid.UUID) *CartView
	Catalog() []ProductView
}

type cartQueriesImpl struct {
	store   shared.SessionStore
	catalog shared.CatalogReadStore
	clock   clock.Clock
}

func NewCartQueries(store shared.SessionStore, catalog shared.CatalogReadStore, clock clock.Clock) CartQueries {
	return &cartQueriesImpl{store: store, catalog: catalog, clock: clock}
}

func (q *cartQueriesImpl) View(sessionID uuid.UUID) *CartView {
	view := &CartView{}

	q.store.Read(sessionID, func(s *cart.Session) {
		items := s.Items()
		view.Items = make([]LineItemView, len(items))
		for i, it := range items {
			view.Items[i] = LineItemView{
				ProductID: it.ProductID,
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
				LineTotal: it.UnitPrice * float64(it.Quantity),
			}
		}
		view.Subtotal = s.Subtotal()
		view.VoucherCode = s.VoucherCode()
		view.Total = s.Total()
		view.CheckoutSuccess = s.SuccessVisible(q.clock.Now())

		if applied := s.Applied(); applied != nil {
			view.Applied = &AppliedVoucherView{
				Name:               applied.Voucher.Name,
				Caption:            applied.Voucher.DiscountCaption(),
				DiscountAmount:     applied.DiscountAmount,
				MinCartCaption:     applied.Voucher.MinCartCaption(),
				MaxDiscountCaption: applied.Voucher.MaxDiscountCaption(),
			}
		}
	})

	return view
}

func (q *cartQueriesImpl) Catalog() []ProductView {
	products := q.catalog.List()
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = ProductView{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.UnitPrice,
			Image: p.Image,
		}
	}
	return views
}
