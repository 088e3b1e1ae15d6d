package response

import (
	"offerbee-storefront/internal/usecase/commands"
	"offerbee-storefront/internal/usecase/queries"
)

type CatalogResponse struct {
	Products []queries.ProductView `json:"products"`
}

func FromCatalog(products []queries.ProductView) CatalogResponse {
	if products == nil {
		products = []queries.ProductView{}
	}
	return CatalogResponse{Products: products}
}

type AppliedVoucherResponse struct {
	Name           string  `json:"name"`
	Message        string  `json:"message"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`
}

func FromAppliedVoucher(s *commands.AppliedVoucherSummary) AppliedVoucherResponse {
	return AppliedVoucherResponse{
		Name:           s.Name,
		Message:        s.Message,
		DiscountAmount: s.DiscountAmount,
		FinalPrice:     s.FinalPrice,
	}
}

type CheckoutResponse struct {
	Total      float64 `json:"total"`
	Message    string  `json:"message,omitempty"`
	RedirectTo string  `json:"redirect_to"`
}

func FromCheckoutResult(r *commands.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Total:      r.Total,
		Message:    r.Message,
		RedirectTo: r.RedirectTo,
	}
}
