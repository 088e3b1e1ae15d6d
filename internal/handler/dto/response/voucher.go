package response

import (
	"offerbee-storefront/internal/usecase/queries"
)

// VoucherListResponse wraps the dashboard rows; the rows themselves are
// the read model, already shaped for display.
type VoucherListResponse struct {
	Vouchers []queries.VoucherRow `json:"vouchers"`
}

func FromVoucherRows(rows []queries.VoucherRow) VoucherListResponse {
	if rows == nil {
		rows = []queries.VoucherRow{}
	}
	return VoucherListResponse{Vouchers: rows}
}

type GeneratedCodeResponse struct {
	Code string `json:"code"`
}
