package queries

import (
	"context"
	"fmt"
	"time"

	"offerbee-storefront/internal/domain/voucher"
	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/clock"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// dashboardDateFormat matches the original "Jan 2, 2006" short style.
const dashboardDateFormat = "Jan 2, 2006"

// VoucherQueries serves the merchant dashboard listing. Every row's
// status is classified at read time against the caller's clock.
type VoucherQueries interface {
	ListMine(ctx context.Context, auth shared.AuthContext) ([]VoucherRow, error)
}

type voucherQueriesImpl struct {
	gateway shared.VoucherGateway
	clock   clock.Clock
}

func NewVoucherQueries(gateway shared.VoucherGateway, clock clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{gateway: gateway, clock: clock}
}

func (q *voucherQueriesImpl) ListMine(ctx context.Context, auth shared.AuthContext) ([]VoucherRow, error) {
	records, err := q.gateway.ListMine(ctx, auth)
	if err != nil {
		if infra.IsKind(err, infra.KindRejected) {
			return nil, errs.Mark(err, errs.ErrUpstreamRejected)
		}
		return nil, errs.Mark(err, errs.ErrUpstreamUnreachable)
	}

	now := q.clock.Now()
	rows := make([]VoucherRow, len(records))
	for i, rec := range records {
		rows[i] = buildRow(rec, now)
	}
	return rows, nil
}

func buildRow(rec shared.VoucherRecord, now time.Time) VoucherRow {
	v := VoucherFromRecord(rec)

	var row VoucherRow
	// Field-for-field copy of the record; derived columns follow.
	_ = copier.Copy(&row, &rec)

	row.DiscountText = v.DiscountColumn()
	row.UsageText = fmt.Sprintf("%d/%d", rec.TotalUsageCount, rec.UsageLimit)
	row.ValidFromText = rec.ActivationDate.Format(dashboardDateFormat)
	row.ValidToText = rec.ExpiryDate.Format(dashboardDateFormat)
	row.Status = voucher.Classify(v, now)
	return row
}

// VoucherFromRecord lifts a wire record into the domain type the
// classifier and caption helpers operate on.
func VoucherFromRecord(rec shared.VoucherRecord) voucher.Voucher {
	var v voucher.Voucher
	_ = copier.Copy(&v, &rec)
	return v
}
