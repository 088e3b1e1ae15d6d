//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"offerbee-storefront/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() voucher.Draft {
	return voucher.Draft{
		Name:           "Summer Sale",
		Code:           voucher.Code("SUMMER20"),
		DiscountType:   voucher.DiscountPercentage,
		DiscountValue:  20,
		ActivationDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestDraftValidate(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*voucher.Draft)
		errIs  error
	}

	runCases := func(t *testing.T, cases []testCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validDraft()
				if tc.mutate != nil {
					tc.mutate(&d)
				}
				err := d.Validate()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	}

	t.Run("discount rules", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid percentage draft"},
			{
				name: "valid fixed draft",
				mutate: func(d *voucher.Draft) {
					d.DiscountType = voucher.DiscountFixed
					d.DiscountValue = 15
				},
			},
			{
				name:   "unknown discount type",
				mutate: func(d *voucher.Draft) { d.DiscountType = "bogus" },
				errIs:  voucher.ErrInvalidDiscountType,
			},
			{
				name:   "percentage above 100",
				mutate: func(d *voucher.Draft) { d.DiscountValue = 120 },
				errIs:  voucher.ErrInvalidDiscountPercent,
			},
			{
				name: "negative fixed value",
				mutate: func(d *voucher.Draft) {
					d.DiscountType = voucher.DiscountFixed
					d.DiscountValue = -1
				},
				errIs: voucher.ErrInvalidDiscountValue,
			},
			{
				name: "max discount on fixed voucher",
				mutate: func(d *voucher.Draft) {
					d.DiscountType = voucher.DiscountFixed
					d.DiscountValue = 15
					m := 50.0
					d.MaxDiscount = &m
				},
				errIs: voucher.ErrMaxDiscountOnFixed,
			},
		})
	})

	t.Run("window and limit rules", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "expiry before activation",
				mutate: func(d *voucher.Draft) { d.ExpiryDate = d.ActivationDate.Add(-time.Hour) },
				errIs:  voucher.ErrInvalidValidityWindow,
			},
			{
				name:   "expiry equal to activation",
				mutate: func(d *voucher.Draft) { d.ExpiryDate = d.ActivationDate },
				errIs:  voucher.ErrInvalidValidityWindow,
			},
			{
				name: "zero usage limit",
				mutate: func(d *voucher.Draft) {
					limit := 0
					d.UsageLimit = &limit
				},
				errIs: voucher.ErrInvalidUsageLimit,
			},
			{
				name: "positive usage limit",
				mutate: func(d *voucher.Draft) {
					limit := 1
					d.UsageLimit = &limit
				},
			},
			{
				name:   "invalid code",
				mutate: func(d *voucher.Draft) { d.Code = voucher.Code("a!") },
				errIs:  voucher.ErrInvalidVoucherCode,
			},
		})
	})
}

func TestCaptions(t *testing.T) {
	minCart := 100.0
	maxDiscount := 50.0

	t.Run("percentage caption appends the rate", func(t *testing.T) {
		v := voucher.Voucher{Name: "Summer Sale", DiscountType: voucher.DiscountPercentage, DiscountValue: 20}
		assert.Equal(t, "Summer Sale - 20%", v.DiscountCaption())
	})

	t.Run("fixed caption is the bare name", func(t *testing.T) {
		v := voucher.Voucher{Name: "Summer Sale", DiscountType: voucher.DiscountFixed, DiscountValue: 20}
		assert.Equal(t, "Summer Sale", v.DiscountCaption())
	})

	t.Run("minimum cart caption", func(t *testing.T) {
		v := voucher.Voucher{MinCartValue: &minCart}
		assert.Equal(t, "Minimum cart value: 100.00", v.MinCartCaption())
		assert.Empty(t, voucher.Voucher{}.MinCartCaption())
	})

	t.Run("maximum discount caption", func(t *testing.T) {
		v := voucher.Voucher{MaxDiscount: &maxDiscount}
		assert.Equal(t, "Maximum discount: 50.00", v.MaxDiscountCaption())
		assert.Empty(t, voucher.Voucher{}.MaxDiscountCaption())
	})

	t.Run("dashboard discount column", func(t *testing.T) {
		pct := voucher.Voucher{DiscountType: voucher.DiscountPercentage, DiscountValue: 20}
		assert.Equal(t, "20%", pct.DiscountColumn())

		fixed := voucher.Voucher{DiscountType: voucher.DiscountFixed, DiscountValue: 15.5}
		assert.Equal(t, "15.5 USD", fixed.DiscountColumn())

		capped := voucher.Voucher{DiscountType: voucher.DiscountPercentage, DiscountValue: 20, MaxDiscount: &maxDiscount}
		assert.Equal(t, "20% (max: $50)", capped.DiscountColumn())
	})
}

func TestCode(t *testing.T) {
	t.Run("valid codes pass", func(t *testing.T) {
		for _, c := range []string{"ABC", "SUMMER20", "summer_20", "promo-2026"} {
			_, err := voucher.NewCode(c)
			assert.NoError(t, err, c)
		}
	})

	t.Run("invalid codes fail", func(t *testing.T) {
		for _, c := range []string{"", "ab", "has space", "bad!code"} {
			_, err := voucher.NewCode(c)
			assert.ErrorIs(t, err, voucher.ErrInvalidVoucherCode, c)
		}
	})

	t.Run("case is preserved", func(t *testing.T) {
		code, err := voucher.NewCode("Summer20")
		require.NoError(t, err)
		assert.Equal(t, "Summer20", code.String())
	})

	t.Run("generated codes are well formed", func(t *testing.T) {
		seen := map[voucher.Code]bool{}
		for range 20 {
			code := voucher.GenerateCode()
			assert.Len(t, code.String(), 8)
			assert.NoError(t, code.Validate())
			seen[code] = true
		}
		// 20 draws colliding entirely would mean the generator is broken.
		assert.Greater(t, len(seen), 1)
	})
}
