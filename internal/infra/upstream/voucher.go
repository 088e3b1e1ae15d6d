package upstream

import (
	"context"
	"net/http"

	"offerbee-storefront/internal/usecase/shared"
)

func (c *Client) ListMine(ctx context.Context, auth shared.AuthContext) ([]shared.VoucherRecord, error) {
	var payload []voucherPayload
	if err := c.do(ctx, http.MethodGet, "/voucher/my-vouchers", auth.Token, nil, &payload); err != nil {
		return nil, err
	}

	records := make([]shared.VoucherRecord, len(payload))
	for i, p := range payload {
		records[i] = p.toRecord()
	}
	return records, nil
}

func (c *Client) Create(ctx context.Context, auth shared.AuthContext, rec shared.CreateVoucherRecord) error {
	req := createVoucherRequest{
		Name:           rec.Name,
		VoucherCode:    rec.Code,
		DiscountType:   rec.DiscountType,
		DiscountValue:  rec.DiscountValue,
		MinCartValue:   rec.MinCartValue,
		MaxDiscount:    rec.MaxDiscount,
		ActivationDate: rec.ActivationDate,
		ExpiryDate:     rec.ExpiryDate,
		UsageLimit:     rec.UsageLimit,
		Reusable:       rec.Reusable,
	}
	if rec.Eligibility != nil {
		req.Eligibility = &eligibilityCriteriaPayload{
			Gender:   rec.Eligibility.Gender,
			AgeRange: rec.Eligibility.AgeRange,
			UserType: rec.Eligibility.UserType,
		}
	}
	return c.do(ctx, http.MethodPost, "/voucher/create-voucher", auth.Token, req, nil)
}

func (c *Client) Delete(ctx context.Context, auth shared.AuthContext, id string) error {
	return c.do(ctx, http.MethodDelete, "/voucher/delete/"+id, auth.Token, nil, nil)
}

func (c *Client) Apply(ctx context.Context, auth shared.AuthContext, code string, cartValue float64) (*shared.AppliedVoucherRecord, error) {
	var resp applyVoucherResponse
	err := c.do(ctx, http.MethodPost, "/voucher/apply-voucher", auth.Token, applyVoucherRequest{
		VoucherCode: code,
		CartValue:   cartValue,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &shared.AppliedVoucherRecord{
		Voucher:        resp.Voucher.toRecord(),
		DiscountAmount: resp.DiscountAmount,
		FinalPrice:     resp.FinalPrice,
		Message:        resp.Message,
	}, nil
}

// Consume commits the voucher usage upstream. The call increments the
// server-side usage count and must only ever be issued once per applied
// voucher; the cart session state machine enforces that.
func (c *Client) Consume(ctx context.Context, auth shared.AuthContext, code string, cartValue float64) (*shared.ConsumedVoucherRecord, error) {
	var resp useVoucherResponse
	err := c.do(ctx, http.MethodPost, "/voucher/use-voucher", auth.Token, applyVoucherRequest{
		VoucherCode: code,
		CartValue:   cartValue,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &shared.ConsumedVoucherRecord{
		Voucher: resp.Voucher.toRecord(),
		Message: resp.Message,
	}, nil
}
