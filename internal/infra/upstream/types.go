package upstream

import (
	"time"

	"offerbee-storefront/internal/usecase/shared"
)

// Wire shapes follow the upstream contract field-for-field; records in
// usecase/shared are the internal mirror.

type voucherPayload struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	VoucherCode     string    `json:"voucherCode"`
	DiscountType    string    `json:"discountType"`
	DiscountValue   float64   `json:"discountValue"`
	MinCartValue    *float64  `json:"minCartValue"`
	MaxDiscount     *float64  `json:"maxDiscount"`
	ActivationDate  time.Time `json:"activationDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
	UsageCount      int       `json:"usageCount"`
	UsageLimit      int       `json:"usageLimit"`
	TotalUsageCount int       `json:"totalUsageCount"`
	IsActive        bool      `json:"isActive"`
	Reusable        bool      `json:"reusable"`
}

func (p voucherPayload) toRecord() shared.VoucherRecord {
	return shared.VoucherRecord{
		ID:              p.ID,
		Name:            p.Name,
		Code:            p.VoucherCode,
		DiscountType:    p.DiscountType,
		DiscountValue:   p.DiscountValue,
		MinCartValue:    p.MinCartValue,
		MaxDiscount:     p.MaxDiscount,
		ActivationDate:  p.ActivationDate,
		ExpiryDate:      p.ExpiryDate,
		UsageCount:      p.UsageCount,
		UsageLimit:      p.UsageLimit,
		TotalUsageCount: p.TotalUsageCount,
		IsActive:        p.IsActive,
		Reusable:        p.Reusable,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type eligibilityCriteriaPayload struct {
	Gender   *string `json:"gender,omitempty"`
	AgeRange *[2]int `json:"ageRange,omitempty"`
	UserType *string `json:"userType,omitempty"`
}

type createVoucherRequest struct {
	Name           string                      `json:"name"`
	VoucherCode    string                      `json:"voucherCode"`
	DiscountType   string                      `json:"discountType"`
	DiscountValue  float64                     `json:"discountValue"`
	MinCartValue   *float64                    `json:"minCartValue,omitempty"`
	MaxDiscount    *float64                    `json:"maxDiscount,omitempty"`
	ActivationDate time.Time                   `json:"activationDate"`
	ExpiryDate     time.Time                   `json:"expiryDate"`
	UsageLimit     *int                        `json:"usageLimit,omitempty"`
	Reusable       bool                        `json:"reusable"`
	Eligibility    *eligibilityCriteriaPayload `json:"eligibilityCriteria,omitempty"`
}

type applyVoucherRequest struct {
	VoucherCode string  `json:"voucherCode"`
	CartValue   float64 `json:"cartValue"`
}

type applyVoucherResponse struct {
	Voucher        voucherPayload `json:"voucher"`
	DiscountAmount float64        `json:"discountAmount"`
	FinalPrice     float64        `json:"finalPrice"`
	Message        string         `json:"message"`
}

type useVoucherResponse struct {
	Voucher voucherPayload `json:"voucher"`
	Message string         `json:"message"`
}
