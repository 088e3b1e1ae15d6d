package shared

import (
	"context"
	"time"

	"offerbee-storefront/internal/domain/cart"

	"github.com/google/uuid"
)

// VoucherRecord is the wire-level voucher row as the upstream API returns
// it. kept deliberately dumb: views and the classifier interpret it.
type VoucherRecord struct {
	ID              string
	Name            string
	Code            string
	DiscountType    string
	DiscountValue   float64
	MinCartValue    *float64
	MaxDiscount     *float64
	ActivationDate  time.Time
	ExpiryDate      time.Time
	UsageCount      int
	UsageLimit      int
	TotalUsageCount int
	IsActive        bool
	Reusable        bool
}

// AppliedVoucherRecord is the dry-run apply result: server-computed
// figures the client renders as-is.
type AppliedVoucherRecord struct {
	Voucher        VoucherRecord
	DiscountAmount float64
	FinalPrice     float64
	Message        string
}

// ConsumedVoucherRecord is the committing use-voucher result.
type ConsumedVoucherRecord struct {
	Voucher VoucherRecord
	Message string
}

type EligibilityCriteria struct {
	Gender   *string
	AgeRange *[2]int
	UserType *string
}

type CreateVoucherRecord struct {
	Name           string
	Code           string
	DiscountType   string
	DiscountValue  float64
	MinCartValue   *float64
	MaxDiscount    *float64
	ActivationDate time.Time
	ExpiryDate     time.Time
	UsageLimit     *int
	Reusable       bool
	Eligibility    *EligibilityCriteria
}

// AuthGateway is the unauthenticated slice of the upstream API.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	Signup(ctx context.Context, username, email, password string) error
}

// VoucherGateway is the bearer-authenticated slice of the upstream API.
// Every call reads the token from the AuthContext it is handed; nothing
// holds a token between calls.
type VoucherGateway interface {
	ListMine(ctx context.Context, auth AuthContext) ([]VoucherRecord, error)
	Create(ctx context.Context, auth AuthContext, rec CreateVoucherRecord) error
	Delete(ctx context.Context, auth AuthContext, id string) error
	Apply(ctx context.Context, auth AuthContext, code string, cartValue float64) (*AppliedVoucherRecord, error)
	// Consume is the committing, usage-incrementing call. It is NOT
	// idempotent upstream; callers must guard against re-issuing it.
	Consume(ctx context.Context, auth AuthContext, code string, cartValue float64) (*ConsumedVoucherRecord, error)
}

// SessionStore owns the session-local cart state. Access goes through
// closures so callers never hold a session outside the store's lock.
type SessionStore interface {
	Update(id uuid.UUID, fn func(*cart.Session) error) error
	Read(id uuid.UUID, fn func(*cart.Session))
}

// CatalogReadStore serves the demo storefront catalog.
type CatalogReadStore interface {
	FindByID(id int64) (cart.Product, bool)
	List() []cart.Product
}
