package commands

import (
	"context"

	"offerbee-storefront/internal/domain/voucher"
	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/shared"
)

// VoucherCommands covers the merchant dashboard's write operations.
// The upstream API persists and enforces everything; local validation
// only catches what the create form would have caught.
type VoucherCommands interface {
	Create(ctx context.Context, auth shared.AuthContext, draft voucher.Draft, eligibility *shared.EligibilityCriteria) error
	Delete(ctx context.Context, auth shared.AuthContext, id string) error
}

type voucherCommandsImpl struct {
	gateway shared.VoucherGateway
}

func NewVoucherCommands(gateway shared.VoucherGateway) VoucherCommands {
	return &voucherCommandsImpl{gateway: gateway}
}

func (v *voucherCommandsImpl) Create(ctx context.Context, auth shared.AuthContext, draft voucher.Draft, eligibility *shared.EligibilityCriteria) error {
	if err := draft.Validate(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	rec := shared.CreateVoucherRecord{
		Name:           draft.Name,
		Code:           draft.Code.String(),
		DiscountType:   draft.DiscountType,
		DiscountValue:  draft.DiscountValue,
		MinCartValue:   draft.MinCartValue,
		MaxDiscount:    draft.MaxDiscount,
		ActivationDate: draft.ActivationDate,
		ExpiryDate:     draft.ExpiryDate,
		UsageLimit:     draft.UsageLimit,
		Reusable:       draft.Reusable,
		Eligibility:    eligibility,
	}

	if err := v.gateway.Create(ctx, auth, rec); err != nil {
		return translateGatewayErr(err, errs.ErrVoucherRejected)
	}
	return nil
}

func (v *voucherCommandsImpl) Delete(ctx context.Context, auth shared.AuthContext, id string) error {
	if err := v.gateway.Delete(ctx, auth, id); err != nil {
		if status, _, ok := infra.RejectionDetails(err); ok && status == 404 {
			return errs.Mark(err, errs.ErrVoucherNotFound)
		}
		return translateGatewayErr(err, errs.ErrVoucherRejected)
	}
	return nil
}

// translateGatewayErr collapses an infra failure into the usecase
// taxonomy: rejections keep their mark (the handler recovers the server
// message), everything else is an unreachable upstream.
func translateGatewayErr(err error, rejectedAs error) error {
	if infra.IsKind(err, infra.KindRejected) {
		return errs.Mark(err, rejectedAs)
	}
	return errs.Mark(err, errs.ErrUpstreamUnreachable)
}
