package port

import (
	"context"

	"github.com/vendora/marketplace/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	// FindByIDs resolves every id or none: a single unknown id fails the
	// whole lookup.
	FindByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	// DeductStock is a conditional atomic decrement: it fails without
	// mutating anything if the post-decrement quantity would be negative.
	// Returns the remaining quantity on success.
	DeductStock(ctx context.Context, id domain.ID, quantity int) (int, error)
	// RestoreStock increments quantity; commutative, safe under
	// concurrent restores.
	RestoreStock(ctx context.Context, id domain.ID, quantity int) error
	CountByOwner(ctx context.Context, ownerID domain.ID) (int, error)
	CountLowStockByOwner(ctx context.Context, ownerID domain.ID) (int, error)
}
