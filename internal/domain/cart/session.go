package cart

import (
	"errors"
	"time"

	"offerbee-storefront/internal/domain/voucher"

	"github.com/google/uuid"
)

var (
	ErrVoucherNotApplied      = errors.New("no voucher applied to this session")
	ErrVoucherAlreadyConsumed = errors.New("voucher already consumed in this session")
	ErrConsumeInFlight        = errors.New("voucher consume already in flight for this session")
)

// SuccessWindow is how long the checkout success state stays visible
// before the storefront reverts and navigates away.
const SuccessWindow = 2000 * time.Millisecond

type Phase int

const (
	PhaseUnapplied Phase = iota
	PhaseApplied
	PhaseConsuming
	PhaseConsumed
)

// AppliedVoucher is the result of a successful apply-voucher exchange.
// DiscountAmount and FinalPrice are server-computed and authoritative;
// nothing here re-derives them. CartValueAtApply is the subtotal captured
// at apply time, and is what the consuming call sends back later.
type AppliedVoucher struct {
	Voucher          voucher.Voucher
	DiscountAmount   float64
	FinalPrice       float64
	CartValueAtApply float64
}

// Session is one browser session's cart plus its voucher state machine:
// Unapplied -> Applied -> Consuming -> Consumed. Only Applied permits
// starting the consuming call; the upstream use-voucher call is not
// idempotent, so a consume outside that phase is rejected locally before
// any network traffic. Consuming pins the voucher state until the call
// either commits (CompleteCheckout) or rolls back (AbortConsume).
type Session struct {
	id           uuid.UUID
	cart         Cart
	voucherCode  string
	applied      *AppliedVoucher
	phase        Phase
	successUntil time.Time
}

func NewSession(id uuid.UUID) *Session {
	return &Session{id: id}
}

func (s *Session) ID() uuid.UUID { return s.id }
func (s *Session) Phase() Phase  { return s.phase }

// Cart mutations restart a consumed session and invalidate any applied
// voucher: the server validated the discount against a cart that no
// longer exists.

func (s *Session) AddItem(p Product) {
	s.restartIfConsumed()
	s.cart.AddItem(p)
	s.invalidateApplied()
}

func (s *Session) RemoveItem(productID int64) {
	s.restartIfConsumed()
	s.cart.RemoveItem(productID)
	s.invalidateApplied()
}

func (s *Session) SetQuantity(productID int64, quantity int) bool {
	s.restartIfConsumed()
	if !s.cart.SetQuantity(productID, quantity) {
		return false
	}
	s.invalidateApplied()
	return true
}

func (s *Session) Items() []LineItem   { return s.cart.Items() }
func (s *Session) IsEmpty() bool       { return s.cart.IsEmpty() }
func (s *Session) Subtotal() float64   { return s.cart.Subtotal() }
func (s *Session) VoucherCode() string { return s.voucherCode }

func (s *Session) SetVoucherCode(code string) {
	s.restartIfConsumed()
	s.voucherCode = code
}

// Total is the single source of truth for the amount charged at checkout:
// the server-computed final price while a voucher is applied, the local
// subtotal otherwise.
func (s *Session) Total() float64 {
	if s.applied != nil {
		return s.applied.FinalPrice
	}
	return s.cart.Subtotal()
}

func (s *Session) Applied() *AppliedVoucher {
	return s.applied
}

// Apply records a successful apply-voucher exchange and moves the session
// to Applied. Dropped while a consume is in flight; the pinned snapshot
// wins over a racing apply.
func (s *Session) Apply(av AppliedVoucher) {
	if s.phase == PhaseConsuming {
		return
	}
	s.restartIfConsumed()
	s.applied = &av
	s.phase = PhaseApplied
}

// ClearApplied drops the applied result (apply failure, or the shopper
// removing the voucher). The typed code text survives. A no-op while a
// consume is in flight: the snapshot is already on the wire.
func (s *Session) ClearApplied() {
	if s.phase == PhaseConsuming {
		return
	}
	s.applied = nil
	if s.phase == PhaseApplied {
		s.phase = PhaseUnapplied
	}
}

// BeginConsume moves the session to Consuming and returns the applied
// result the consuming call must send. Only the Applied phase may start
// a consume; anything else is rejected here so the non-idempotent
// upstream call is never issued twice. Callers must run this under the
// store lock, then AbortConsume on upstream failure or CompleteCheckout
// on success.
func (s *Session) BeginConsume() (AppliedVoucher, error) {
	switch s.phase {
	case PhaseApplied:
		s.phase = PhaseConsuming
		return *s.applied, nil
	case PhaseConsuming:
		return AppliedVoucher{}, ErrConsumeInFlight
	case PhaseConsumed:
		return AppliedVoucher{}, ErrVoucherAlreadyConsumed
	default:
		return AppliedVoucher{}, ErrVoucherNotApplied
	}
}

// AbortConsume rolls a failed consume back to Applied with all state
// intact, so the shopper can retry.
func (s *Session) AbortConsume() {
	if s.phase == PhaseConsuming {
		s.phase = PhaseApplied
	}
}

// CompleteCheckout commits a successful checkout: cart, code text and
// applied state are cleared, the session becomes Consumed, and the
// transient success state opens for SuccessWindow.
func (s *Session) CompleteCheckout(now time.Time) {
	s.cart.Clear()
	s.voucherCode = ""
	s.applied = nil
	s.phase = PhaseConsumed
	s.successUntil = now.Add(SuccessWindow)
}

// SuccessVisible reports whether the post-checkout success state is still
// showing at the given instant.
func (s *Session) SuccessVisible(now time.Time) bool {
	return now.Before(s.successUntil)
}

// Consuming is excluded here: the in-flight snapshot stays pinned and
// CompleteCheckout clears everything anyway.
func (s *Session) invalidateApplied() {
	if s.phase == PhaseApplied {
		s.applied = nil
		s.phase = PhaseUnapplied
	}
}

// Consumed is terminal for the checked-out cart; the next mutation starts
// a fresh one under the same session ID.
func (s *Session) restartIfConsumed() {
	if s.phase == PhaseConsumed {
		s.phase = PhaseUnapplied
	}
}
