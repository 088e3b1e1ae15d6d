//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"offerbee-storefront/internal/domain/voucher"
	"offerbee-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name   string
		mutate func(*builder.VoucherBuilder)
		want   voucher.Status
	}

	runCases := func(t *testing.T, cases []testCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewVoucherBuilder(now)
				if tc.mutate != nil {
					tc.mutate(b)
				}
				assert.Equal(t, tc.want, voucher.Classify(b.BuildDomain(), now))
			})
		}
	}

	t.Run("single condition", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "active voucher inside its window",
				want: voucher.StatusActive,
			},
			{
				name:   "inactive flag",
				mutate: func(b *builder.VoucherBuilder) { b.Inactive() },
				want:   voucher.StatusInactive,
			},
			{
				name:   "activation in the future",
				mutate: func(b *builder.VoucherBuilder) { b.Scheduled(now) },
				want:   voucher.StatusScheduled,
			},
			{
				name:   "expiry in the past",
				mutate: func(b *builder.VoucherBuilder) { b.Expired(now) },
				want:   voucher.StatusExpired,
			},
			{
				name:   "usage count reached limit",
				mutate: func(b *builder.VoucherBuilder) { b.Exhausted() },
				want:   voucher.StatusExhausted,
			},
			{
				name:   "usage count beyond limit",
				mutate: func(b *builder.VoucherBuilder) { b.UsageCount = b.UsageLimit + 5 },
				want:   voucher.StatusExhausted,
			},
		})
	})

	t.Run("priority when several conditions hold", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "inactive wins over expired",
				mutate: func(b *builder.VoucherBuilder) { b.Inactive().Expired(now) },
				want:   voucher.StatusInactive,
			},
			{
				name:   "inactive wins over exhausted",
				mutate: func(b *builder.VoucherBuilder) { b.Inactive().Exhausted() },
				want:   voucher.StatusInactive,
			},
			{
				name:   "scheduled wins over exhausted",
				mutate: func(b *builder.VoucherBuilder) { b.Scheduled(now).Exhausted() },
				want:   voucher.StatusScheduled,
			},
			{
				name:   "expired wins over exhausted",
				mutate: func(b *builder.VoucherBuilder) { b.Expired(now).Exhausted() },
				want:   voucher.StatusExpired,
			},
		})
	})

	t.Run("boundary instants", func(t *testing.T) {
		t.Run("exactly at activation is not scheduled", func(t *testing.T) {
			b := builder.NewVoucherBuilder(now)
			b.ActivationDate = now
			assert.Equal(t, voucher.StatusActive, voucher.Classify(b.BuildDomain(), now))
		})

		t.Run("exactly at expiry is not expired", func(t *testing.T) {
			b := builder.NewVoucherBuilder(now)
			b.ExpiryDate = now
			assert.Equal(t, voucher.StatusActive, voucher.Classify(b.BuildDomain(), now))
		})
	})
}
