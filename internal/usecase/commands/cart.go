package commands

import (
	"context"
	"errors"
	"strings"

	"offerbee-storefront/internal/domain/cart"
	"offerbee-storefront/internal/pkg/clock"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/queries"
	"offerbee-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// DashboardPath is where the storefront navigates after a checkout.
const DashboardPath = "/dashboard"

type AppliedVoucherSummary struct {
	Name           string
	Message        string
	DiscountAmount float64
	FinalPrice     float64
}

type CheckoutResult struct {
	Total      float64
	Message    string
	RedirectTo string
}

// CartCommands mutates the session-local cart and drives the two-phase
// voucher protocol: Apply is the dry-run validation, Checkout issues the
// committing consume call. Server-computed discount figures are taken as
// authoritative and never re-derived here.
type CartCommands interface {
	AddItem(ctx context.Context, sessionID uuid.UUID, productID int64) error
	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID int64) error
	SetQuantity(ctx context.Context, sessionID uuid.UUID, productID int64, quantity int) error
	ApplyVoucher(ctx context.Context, auth shared.AuthContext, sessionID uuid.UUID, code string) (*AppliedVoucherSummary, error)
	RemoveVoucher(ctx context.Context, sessionID uuid.UUID) error
	Checkout(ctx context.Context, auth shared.AuthContext, sessionID uuid.UUID) (*CheckoutResult, error)
}

type cartCommandsImpl struct {
	store   shared.SessionStore
	catalog shared.CatalogReadStore
	gateway shared.VoucherGateway
	clock   clock.Clock
}

func NewCartCommands(
	store shared.SessionStore,
	catalog shared.CatalogReadStore,
	gateway shared.VoucherGateway,
	clock clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		store:   store,
		catalog: catalog,
		gateway: gateway,
		clock:   clock,
	}
}

func (c *cartCommandsImpl) AddItem(_ context.Context, sessionID uuid.UUID, productID int64) error {
	product, ok := c.catalog.FindByID(productID)
	if !ok {
		return errs.ErrProductNotFound
	}

	return c.store.Update(sessionID, func(s *cart.Session) error {
		s.AddItem(product)
		return nil
	})
}

func (c *cartCommandsImpl) RemoveItem(_ context.Context, sessionID uuid.UUID, productID int64) error {
	return c.store.Update(sessionID, func(s *cart.Session) error {
		s.RemoveItem(productID)
		return nil
	})
}

func (c *cartCommandsImpl) SetQuantity(_ context.Context, sessionID uuid.UUID, productID int64, quantity int) error {
	return c.store.Update(sessionID, func(s *cart.Session) error {
		if !s.SetQuantity(productID, quantity) {
			return errs.ErrInvalidQuantity
		}
		return nil
	})
}

// ApplyVoucher runs the dry-run validation exchange. The subtotal sent
// upstream is captured before the call and stored on success: checkout
// consumes against that captured figure, not a recomputed one.
func (c *cartCommandsImpl) ApplyVoucher(ctx context.Context, auth shared.AuthContext, sessionID uuid.UUID, code string) (*AppliedVoucherSummary, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		// Disabled state upstream in the UI; never reaches the network.
		return nil, errs.ErrEmptyVoucherCode
	}

	var subtotal float64
	c.store.Read(sessionID, func(s *cart.Session) {
		subtotal = s.Subtotal()
	})

	rec, err := c.gateway.Apply(ctx, auth, code, subtotal)
	if err != nil {
		// A failed apply clears any previously applied voucher but keeps
		// the typed code so the shopper can correct it.
		_ = c.store.Update(sessionID, func(s *cart.Session) error {
			s.SetVoucherCode(code)
			s.ClearApplied()
			return nil
		})
		return nil, translateGatewayErr(err, errs.ErrVoucherRejected)
	}

	applied := cart.AppliedVoucher{
		Voucher:          queries.VoucherFromRecord(rec.Voucher),
		DiscountAmount:   rec.DiscountAmount,
		FinalPrice:       rec.FinalPrice,
		CartValueAtApply: subtotal,
	}

	err = c.store.Update(sessionID, func(s *cart.Session) error {
		s.SetVoucherCode(code)
		if s.Subtotal() != subtotal {
			// The cart moved while the apply was in flight; the server
			// validated a subtotal that no longer exists. Discard the
			// stale result and let the shopper re-apply.
			s.ClearApplied()
			return errs.ErrCartChanged
		}
		s.Apply(applied)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AppliedVoucherSummary{
		Name:           applied.Voucher.Name,
		Message:        rec.Message,
		DiscountAmount: rec.DiscountAmount,
		FinalPrice:     rec.FinalPrice,
	}, nil
}

func (c *cartCommandsImpl) RemoveVoucher(_ context.Context, sessionID uuid.UUID) error {
	return c.store.Update(sessionID, func(s *cart.Session) error {
		s.SetVoucherCode("")
		s.ClearApplied()
		return nil
	})
}

// Checkout commits the cart. With a voucher applied it first issues the
// consuming call with the subtotal captured at apply time; that call is
// not idempotent upstream, so failure rolls the session back to Applied
// with all state intact and success is committed exactly once.
func (c *cartCommandsImpl) Checkout(ctx context.Context, auth shared.AuthContext, sessionID uuid.UUID) (*CheckoutResult, error) {
	var (
		total   float64
		applied *cart.AppliedVoucher
	)
	// The Applied -> Consuming transition happens under the store lock,
	// so a second checkout on the same session is turned away here
	// before it can reach the network.
	err := c.store.Update(sessionID, func(s *cart.Session) error {
		if s.IsEmpty() {
			return errs.ErrEmptyCart
		}
		total = s.Total()

		av, berr := s.BeginConsume()
		switch {
		case berr == nil:
			if !auth.Authenticated() {
				s.AbortConsume()
				return errs.ErrInvalidCredentials
			}
			applied = &av
		case errors.Is(berr, cart.ErrConsumeInFlight):
			return errs.ErrCheckoutInProgress
		}
		// No voucher applied: plain checkout.
		return nil
	})
	if err != nil {
		return nil, err
	}

	var message string
	if applied != nil {
		rec, err := c.gateway.Consume(ctx, auth, applied.Voucher.Code.String(), applied.CartValueAtApply)
		if err != nil {
			_ = c.store.Update(sessionID, func(s *cart.Session) error {
				s.AbortConsume()
				return nil
			})
			return nil, translateGatewayErr(err, errs.ErrVoucherRejected)
		}
		message = rec.Message
	}

	err = c.store.Update(sessionID, func(s *cart.Session) error {
		s.CompleteCheckout(c.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Total:      total,
		Message:    message,
		RedirectTo: DashboardPath,
	}, nil
}
