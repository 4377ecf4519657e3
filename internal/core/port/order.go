package port

import (
	"context"
	"time"

	"github.com/vendora/marketplace/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type OrderPort interface {
	// Create persists the order together with its creation event in the
	// outbox.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Order, error)
	GetByAccount(ctx context.Context, accountName string, limit, offset int64) ([]*domain.Order, error)
	GetByStatus(ctx context.Context, status domain.OrderStatus, limit, offset int64) ([]*domain.Order, error)
	UpdateStatusWithOutbox(ctx context.Context, id domain.ID, status domain.OrderStatus, event domain.Event) error
	CountByAccountAndStatus(ctx context.Context, accountName string, status domain.OrderStatus) (int, error)
	// SalesTotalBetween sums order totals in [from, to), excluding
	// cancelled orders.
	SalesTotalBetween(ctx context.Context, accountName string, from, to time.Time) (domain.Amount, error)
	// TopProductsByQuantity ranks products by summed ordered quantity
	// across all non-cancelled orders, unbounded time window.
	TopProductsByQuantity(ctx context.Context, limit int) ([]domain.TopProduct, error)
	Delete(ctx context.Context, id domain.ID) error
}
