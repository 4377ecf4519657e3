package dto

import "github.com/vendora/marketplace/internal/core/domain"

type CreateProductRequest struct {
	Name          string    `json:"name" binding:"required"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Price         int       `json:"price" binding:"required,gt=0"`
	Quantity      int       `json:"quantity" binding:"gte=0"`
	MinStockLevel int       `json:"min_stock_level" binding:"gte=0"`
	OwnerID       domain.ID `json:"owner_id" binding:"required"`
	SupplierID    domain.ID `json:"supplier_id"`
}
