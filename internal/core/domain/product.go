package domain

import "time"

type Product struct {
	ID            ID
	Name          string
	Category      string
	Description   string
	Price         Amount
	Quantity      int
	MinStockLevel int
	OwnerID       ID
	SupplierID    ID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(name, category, description string, price Amount, quantity, minStockLevel int, ownerID, supplierID ID) *Product {
	return &Product{
		Name:          name,
		Category:      category,
		Description:   description,
		Price:         price,
		Quantity:      quantity,
		MinStockLevel: minStockLevel,
		OwnerID:       ownerID,
		SupplierID:    supplierID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// IsLowStock reports whether the product is running out without being
// fully depleted: 0 < quantity < minimum stock level.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity < p.MinStockLevel
}

type LowStockEvent struct {
	ProductID ID     `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	MinLevel  int    `json:"min_stock_level"`
	OwnerID   ID     `json:"owner_id"`
}

func (e *LowStockEvent) GetName() string {
	return "product.low_stock"
}

func (e *LowStockEvent) GetEntityName() string {
	return "product"
}
