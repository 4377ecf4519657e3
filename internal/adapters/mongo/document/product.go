package document

import (
	"time"

	"github.com/vendora/marketplace/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Category      string             `bson:"category"`
	Description   string             `bson:"description"`
	Price         int64              `bson:"price"`
	Quantity      int                `bson:"quantity"`
	MinStockLevel int                `bson:"min_stock_level"`
	OwnerID       primitive.ObjectID `bson:"owner_id,omitempty"`
	SupplierID    primitive.ObjectID `bson:"supplier_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	product := &domain.Product{
		ID:            domain.ID(doc.ID.Hex()),
		Name:          doc.Name,
		Category:      doc.Category,
		Description:   doc.Description,
		Price:         domain.Amount(doc.Price),
		Quantity:      doc.Quantity,
		MinStockLevel: doc.MinStockLevel,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	if !doc.OwnerID.IsZero() {
		product.OwnerID = domain.ID(doc.OwnerID.Hex())
	}
	if !doc.SupplierID.IsZero() {
		product.SupplierID = domain.ID(doc.SupplierID.Hex())
	}
	return product
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		Price:         int64(p.Price),
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.OwnerID != "" {
		ownerID, _ := primitive.ObjectIDFromHex(string(p.OwnerID))
		doc.OwnerID = ownerID
	}
	if p.SupplierID != "" {
		supplierID, _ := primitive.ObjectIDFromHex(string(p.SupplierID))
		doc.SupplierID = supplierID
	}

	return doc
}
