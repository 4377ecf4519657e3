package port

import (
	"context"

	"github.com/vendora/marketplace/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type SupplierPort interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Supplier, error)
	GetAll(ctx context.Context) ([]*domain.Supplier, error)
	Exists(ctx context.Context, id domain.ID) (bool, error)
}
