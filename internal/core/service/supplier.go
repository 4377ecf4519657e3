package service

import (
	"context"

	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/dto"
	"github.com/vendora/marketplace/internal/core/logger"
	"github.com/vendora/marketplace/internal/core/port"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
)

type SupplierService struct {
	supplierRepository port.SupplierPort
}

func NewSupplierService(supplierRepository port.SupplierPort) *SupplierService {
	return &SupplierService{supplierRepository: supplierRepository}
}

func (s *SupplierService) Create(ctx context.Context, request *dto.CreateSupplierRequest) (*domain.Supplier, error) {
	supplier := domain.NewSupplier(request.Name, request.Email, request.Phone)

	if err := s.supplierRepository.Create(ctx, supplier); err != nil {
		logger.Error(ctx, "supplier: create failed", err, map[string]any{
			"name": request.Name,
		})
		return nil, err
	}

	logger.Info(ctx, "Supplier created", map[string]any{"supplier_id": supplier.ID})
	return supplier, nil
}

func (s *SupplierService) GetByID(ctx context.Context, id domain.ID) (*domain.Supplier, error) {
	return s.supplierRepository.GetByID(ctx, id)
}

func (s *SupplierService) GetAll(ctx context.Context) ([]*domain.Supplier, error) {
	return s.supplierRepository.GetAll(ctx)
}

func (s *SupplierService) Exists(ctx context.Context, id domain.ID) error {
	_, err := s.supplierRepository.Exists(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return serviceerrors.NewNotFoundError("supplier not found")
		}
		logger.Error(ctx, "supplier: exists failed", err, map[string]any{
			"supplier_id": id,
		})
		return nil
	}

	return nil
}
