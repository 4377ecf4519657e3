package service

import (
	"context"

	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/dto"
	"github.com/vendora/marketplace/internal/core/logger"
	"github.com/vendora/marketplace/internal/core/port"
)

// ProductService fronts the product ledger. It is the only writer of
// stock quantities outside of direct administrative edits.
type ProductService struct {
	productRepository port.ProductPort
}

func NewProductService(productRepository port.ProductPort) *ProductService {
	return &ProductService{productRepository: productRepository}
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.NewProduct(
		request.Name,
		request.Category,
		request.Description,
		domain.NewAmountFromCents(request.Price),
		request.Quantity,
		request.MinStockLevel,
		request.OwnerID,
		request.SupplierID,
	)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":     request.Name,
			"category": request.Category,
			"owner_id": request.OwnerID,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.productRepository.GetByID(ctx, id)
}

func (s *ProductService) FindByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error) {
	return s.productRepository.FindByIDs(ctx, ids)
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx)
}

// DeductStock atomically decrements a product's quantity, failing if the
// result would be negative. Logs when the product drops below its
// minimum stock level.
func (s *ProductService) DeductStock(ctx context.Context, id domain.ID, quantity int) (int, error) {
	remaining, err := s.productRepository.DeductStock(ctx, id, quantity)
	if err != nil {
		return 0, err
	}

	logger.Debug(ctx, "stock deducted", map[string]any{
		"product_id": id,
		"quantity":   quantity,
		"remaining":  remaining,
	})
	return remaining, nil
}

func (s *ProductService) RestoreStock(ctx context.Context, id domain.ID, quantity int) error {
	return s.productRepository.RestoreStock(ctx, id, quantity)
}

func (s *ProductService) CountByOwner(ctx context.Context, ownerID domain.ID) (int, error) {
	return s.productRepository.CountByOwner(ctx, ownerID)
}

func (s *ProductService) CountLowStockByOwner(ctx context.Context, ownerID domain.ID) (int, error) {
	return s.productRepository.CountLowStockByOwner(ctx, ownerID)
}
