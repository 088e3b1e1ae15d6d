package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSignupRejected     = errors.New("signup rejected")
	ErrTokenExpired       = errors.New("token expired")

	// Voucher errors
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrVoucherRejected = errors.New("voucher rejected")
	ErrInvalidVoucher  = errors.New("invalid voucher")

	// Cart errors
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrEmptyVoucherCode   = errors.New("voucher code is empty")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCartChanged        = errors.New("cart changed while the voucher was being validated")
	ErrCheckoutInProgress = errors.New("checkout already in progress")

	// Upstream errors
	ErrUpstreamUnreachable = errors.New("upstream api unreachable")
	ErrUpstreamRejected    = errors.New("upstream api rejected request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)

// ValidationError carries field-addressable feedback for form input.
// Every other error kind collapses into a single message for the caller.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func ValidationFields(err error) (map[string]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
