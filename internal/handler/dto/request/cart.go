package request

type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type SetQuantityRequest struct {
	// Quantity below one is rejected in the domain; binding only guards
	// against a missing field.
	Quantity int `json:"quantity" binding:"required"`
}

type ApplyVoucherRequest struct {
	VoucherCode string `json:"voucher_code"`
}
