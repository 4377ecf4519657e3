package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/dto"
	"github.com/vendora/marketplace/internal/core/port/mock"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupProductService(t *testing.T) (*ProductService, *mock.MockProductPort) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductPort(ctrl)
	return NewProductService(productRepo), productRepo
}

func TestProductService_CreateProduct(t *testing.T) {
	ownerID := domain.ID("aabbccddee112233aabbccd9")

	t.Run("success", func(t *testing.T) {
		svc, repo := setupProductService(t)
		request := &dto.CreateProductRequest{
			Name:          "Hammer",
			Category:      "tools",
			Price:         1299,
			Quantity:      20,
			MinStockLevel: 5,
			OwnerID:       ownerID,
		}

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, product *domain.Product) error {
				product.ID = domain.ID("aabbccddee112233aabbccd1")
				return nil
			})

		product, err := svc.CreateProduct(context.Background(), request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.Quantity != 20 || product.MinStockLevel != 5 {
			t.Fatalf("unexpected stock fields %+v", product)
		}
		if product.OwnerID != ownerID {
			t.Fatalf("expected owner %s, got %s", ownerID, product.OwnerID)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		svc, repo := setupProductService(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.CreateProduct(context.Background(), &dto.CreateProductRequest{Name: "Hammer"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestProductService_DeductStock(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccd1")

	t.Run("returns remaining quantity", func(t *testing.T) {
		svc, repo := setupProductService(t)

		repo.EXPECT().
			DeductStock(gomock.Any(), productID, 3).
			Return(2, nil)

		remaining, err := svc.DeductStock(context.Background(), productID, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if remaining != 2 {
			t.Fatalf("expected remaining 2, got %d", remaining)
		}
	})

	t.Run("propagates consistency failure", func(t *testing.T) {
		svc, repo := setupProductService(t)

		repo.EXPECT().
			DeductStock(gomock.Any(), productID, 3).
			Return(0, serviceerrors.NewConsistencyError(string(productID)))

		_, err := svc.DeductStock(context.Background(), productID, 3)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConsistency) {
			t.Fatalf("expected KindConsistency, got %v", err)
		}
	})
}
