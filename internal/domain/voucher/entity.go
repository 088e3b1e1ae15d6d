package voucher

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

var (
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountValue   = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidValidityWindow  = errors.New("activation date must be before expiry date")
	ErrInvalidUsageLimit      = errors.New("usage limit must be positive")
	ErrMaxDiscountOnFixed     = errors.New("max discount applies to percentage vouchers only")
)

// Voucher is the server-owned discount record as this service sees it.
// The remote API is authoritative for every field; local code classifies
// and renders but never recomputes discounts. usageCount >= usageLimit is
// a legal state here (the classifier reports it as Exhausted) even though
// upstream normally prevents it.
type Voucher struct {
	ID              string
	Name            string
	Code            Code
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

// Draft holds the merchant's input for a create-voucher call. Validation
// here mirrors the form-level rules; eligibility criteria are forwarded
// opaquely and evaluated upstream.
type Draft struct {
	Name           string
	Code           Code
	DiscountType   string
	DiscountValue  float64
	MinCartValue   *float64
	MaxDiscount    *float64
	ActivationDate time.Time
	ExpiryDate     time.Time
	UsageLimit     *int
	Reusable       bool
}

func (d Draft) Validate() error {
	if err := d.Code.Validate(); err != nil {
		return err
	}
	if err := validateDiscount(d.DiscountType, d.DiscountValue); err != nil {
		return err
	}
	if d.MaxDiscount != nil && d.DiscountType == DiscountFixed {
		return ErrMaxDiscountOnFixed
	}
	if !d.ActivationDate.Before(d.ExpiryDate) {
		return ErrInvalidValidityWindow
	}
	if d.UsageLimit != nil && *d.UsageLimit < 1 {
		return ErrInvalidUsageLimit
	}
	return nil
}

func validateDiscount(discountType string, value float64) error {
	switch discountType {
	case DiscountPercentage:
		if value < 0 || value > 100 {
			return ErrInvalidDiscountPercent
		}
	case DiscountFixed:
		if value < 0 {
			return ErrInvalidDiscountValue
		}
	default:
		return ErrInvalidDiscountType
	}
	return nil
}

// DiscountCaption is the line shown next to an applied voucher: percentage
// vouchers append the rate, fixed vouchers show the bare name.
func (v Voucher) DiscountCaption() string {
	if v.DiscountType == DiscountPercentage {
		return fmt.Sprintf("%s - %s%%", v.Name, trimFloat(v.DiscountValue))
	}
	return v.Name
}

// MinCartCaption renders unconditionally when the threshold is set; the
// server decides whether the cart actually meets it.
func (v Voucher) MinCartCaption() string {
	if v.MinCartValue == nil {
		return ""
	}
	return fmt.Sprintf("Minimum cart value: %.2f", *v.MinCartValue)
}

func (v Voucher) MaxDiscountCaption() string {
	if v.MaxDiscount == nil {
		return ""
	}
	return fmt.Sprintf("Maximum discount: %.2f", *v.MaxDiscount)
}

// DiscountColumn is the dashboard table cell: "20%" or "20 USD", with the
// cap appended when one is set.
func (v Voucher) DiscountColumn() string {
	var s string
	if v.DiscountType == DiscountPercentage {
		s = trimFloat(v.DiscountValue) + "%"
	} else {
		s = trimFloat(v.DiscountValue) + " USD"
	}
	if v.MaxDiscount != nil {
		s += fmt.Sprintf(" (max: $%s)", trimFloat(*v.MaxDiscount))
	}
	return s
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
