package queries

import (
	"time"

	"offerbee-storefront/internal/domain/voucher"
)

// Read models (DTO for read side)

// VoucherRow is one dashboard table row: the raw record plus everything
// derived for display (classified status, formatted columns).
type VoucherRow struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Code            string         `json:"code"`
	DiscountType    string         `json:"discount_type"`
	DiscountValue   float64        `json:"discount_value"`
	MinCartValue    *float64       `json:"min_cart_value,omitempty"`
	MaxDiscount     *float64       `json:"max_discount,omitempty"`
	ActivationDate  time.Time      `json:"activation_date"`
	ExpiryDate      time.Time      `json:"expiry_date"`
	UsageCount      int            `json:"usage_count"`
	UsageLimit      int            `json:"usage_limit"`
	TotalUsageCount int            `json:"total_usage_count"`
	IsActive        bool           `json:"is_active"`
	DiscountText    string         `json:"discount_text"`
	UsageText       string         `json:"usage_text"`
	ValidFromText   string         `json:"valid_from_text"`
	ValidToText     string         `json:"valid_to_text"`
	Status          voucher.Status `json:"status"`
}

type ProductView struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type LineItemView struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// AppliedVoucherView carries only presentation figures rendered straight
// from the voucher payload; the discount math behind them is upstream's.
type AppliedVoucherView struct {
	Name               string  `json:"name"`
	Caption            string  `json:"caption"`
	DiscountAmount     float64 `json:"discount_amount"`
	MinCartCaption     string  `json:"min_cart_caption,omitempty"`
	MaxDiscountCaption string  `json:"max_discount_caption,omitempty"`
}

type CartView struct {
	Items           []LineItemView      `json:"items"`
	Subtotal        float64             `json:"subtotal"`
	VoucherCode     string              `json:"voucher_code"`
	Applied         *AppliedVoucherView `json:"applied_voucher,omitempty"`
	Total           float64             `json:"total"`
	CheckoutSuccess bool                `json:"checkout_success"`
}
