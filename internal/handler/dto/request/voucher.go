package request

import (
	"strings"
	"time"

	"offerbee-storefront/internal/domain/voucher"
	"offerbee-storefront/internal/usecase/shared"
)

type EligibilityCriteriaRequest struct {
	Gender   *string `json:"gender,omitempty"`
	AgeRange *[2]int `json:"ageRange,omitempty"`
	UserType *string `json:"userType,omitempty"`
}

type CreateVoucherRequest struct {
	Name           string                      `json:"name" binding:"required"`
	Code           string                      `json:"voucherCode" binding:"required"`
	DiscountType   string                      `json:"discountType" binding:"required"`
	DiscountValue  float64                     `json:"discountValue" binding:"required"`
	MinCartValue   *float64                    `json:"minCartValue,omitempty"`
	MaxDiscount    *float64                    `json:"maxDiscount,omitempty"`
	ActivationDate time.Time                   `json:"activationDate" binding:"required"`
	ExpiryDate     time.Time                   `json:"expiryDate" binding:"required"`
	UsageLimit     *int                        `json:"usageLimit,omitempty"`
	Reusable       bool                        `json:"reusable"`
	Eligibility    *EligibilityCriteriaRequest `json:"eligibilityCriteria,omitempty"`
}

func (r *CreateVoucherRequest) ToDomain() (voucher.Draft, error) {
	code, err := voucher.NewCode(strings.TrimSpace(r.Code))
	if err != nil {
		return voucher.Draft{}, err
	}

	return voucher.Draft{
		Name:           strings.TrimSpace(r.Name),
		Code:           code,
		DiscountType:   r.DiscountType,
		DiscountValue:  r.DiscountValue,
		MinCartValue:   r.MinCartValue,
		MaxDiscount:    r.MaxDiscount,
		ActivationDate: r.ActivationDate,
		ExpiryDate:     r.ExpiryDate,
		UsageLimit:     r.UsageLimit,
		Reusable:       r.Reusable,
	}, nil
}

func (r *CreateVoucherRequest) EligibilityCriteria() *shared.EligibilityCriteria {
	if r.Eligibility == nil {
		return nil
	}
	return &shared.EligibilityCriteria{
		Gender:   r.Eligibility.Gender,
		AgeRange: r.Eligibility.AgeRange,
		UserType: r.Eligibility.UserType,
	}
}
