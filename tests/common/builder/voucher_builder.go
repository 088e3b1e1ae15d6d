//go:build unit || e2e

package builder

import (
	"time"

	"offerbee-storefront/internal/domain/voucher"
	reqdto "offerbee-storefront/internal/handler/dto/request"
	"offerbee-storefront/internal/usecase/shared"
)

// VoucherBuilder produces a voucher that is Active at the reference
// instant unless a mutation says otherwise.
type VoucherBuilder struct {
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

func NewVoucherBuilder(now time.Time) *VoucherBuilder {
	return &VoucherBuilder{
		ID:             "68a1f0c2b7e4d3a9c5f61234",
		Name:           "Summer Sale",
		Code:           "SUMMER20",
		DiscountType:   voucher.DiscountPercentage,
		DiscountValue:  20,
		ActivationDate: now.Add(-24 * time.Hour),
		ExpiryDate:     now.Add(24 * time.Hour),
		UsageCount:     0,
		UsageLimit:     100,
		IsActive:       true,
		Reusable:       false,
	}
}

func (b *VoucherBuilder) Inactive() *VoucherBuilder {
	b.IsActive = false
	return b
}

func (b *VoucherBuilder) Scheduled(now time.Time) *VoucherBuilder {
	b.ActivationDate = now.Add(24 * time.Hour)
	b.ExpiryDate = now.Add(48 * time.Hour)
	return b
}

func (b *VoucherBuilder) Expired(now time.Time) *VoucherBuilder {
	b.ActivationDate = now.Add(-48 * time.Hour)
	b.ExpiryDate = now.Add(-24 * time.Hour)
	return b
}

func (b *VoucherBuilder) Exhausted() *VoucherBuilder {
	b.UsageCount = b.UsageLimit
	return b
}

func (b *VoucherBuilder) BuildDomain() voucher.Voucher {
	return voucher.Voucher{
		ID:              b.ID,
		Name:            b.Name,
		Code:            voucher.Code(b.Code),
		DiscountType:    b.DiscountType,
		DiscountValue:   b.DiscountValue,
		MinCartValue:    b.MinCartValue,
		MaxDiscount:     b.MaxDiscount,
		ActivationDate:  b.ActivationDate,
		ExpiryDate:      b.ExpiryDate,
		UsageCount:      b.UsageCount,
		UsageLimit:      b.UsageLimit,
		TotalUsageCount: b.TotalUsageCount,
		IsActive:        b.IsActive,
		Reusable:        b.Reusable,
	}
}

func (b *VoucherBuilder) BuildRecord() shared.VoucherRecord {
	return shared.VoucherRecord{
		ID:              b.ID,
		Name:            b.Name,
		Code:            b.Code,
		DiscountType:    b.DiscountType,
		DiscountValue:   b.DiscountValue,
		MinCartValue:    b.MinCartValue,
		MaxDiscount:     b.MaxDiscount,
		ActivationDate:  b.ActivationDate,
		ExpiryDate:      b.ExpiryDate,
		UsageCount:      b.UsageCount,
		UsageLimit:      b.UsageLimit,
		TotalUsageCount: b.TotalUsageCount,
		IsActive:        b.IsActive,
		Reusable:        b.Reusable,
	}
}

func (b *VoucherBuilder) BuildCreateDTO() reqdto.CreateVoucherRequest {
	return reqdto.CreateVoucherRequest{
		Name:           b.Name,
		Code:           b.Code,
		DiscountType:   b.DiscountType,
		DiscountValue:  b.DiscountValue,
		MinCartValue:   b.MinCartValue,
		MaxDiscount:    b.MaxDiscount,
		ActivationDate: b.ActivationDate,
		ExpiryDate:     b.ExpiryDate,
		UsageLimit:     &b.UsageLimit,
		Reusable:       b.Reusable,
	}
}
