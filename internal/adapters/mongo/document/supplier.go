package document

import (
	"time"

	"github.com/vendora/marketplace/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SupplierDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (doc SupplierDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *SupplierDocument) ToDomain() *domain.Supplier {
	return &domain.Supplier{
		ID:        domain.ID(doc.ID.Hex()),
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		CreatedAt: doc.CreatedAt,
	}
}

func ToSupplierDocument(s *domain.Supplier) *SupplierDocument {
	return &SupplierDocument{
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}
