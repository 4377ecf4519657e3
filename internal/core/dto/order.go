package dto

import "github.com/vendora/marketplace/internal/core/domain"

type OrderItem struct {
	ProductID domain.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type CreateOrderRequest struct {
	SupplierID  domain.ID   `json:"supplier_id"`
	AccountName string      `json:"account_name"`
	Items       []OrderItem `json:"items"`
	// TotalAmount, when non-zero, is cross-checked against the
	// ledger-priced total computed at creation time.
	TotalAmount int `json:"total_amount"`
	// Status may be "pending" (default) or "new".
	Status string `json:"status"`
}
