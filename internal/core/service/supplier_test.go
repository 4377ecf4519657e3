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

func setupSupplierService(t *testing.T) (*SupplierService, *mock.MockSupplierPort) {
	ctrl := gomock.NewController(t)
	supplierRepo := mock.NewMockSupplierPort(ctrl)
	return NewSupplierService(supplierRepo), supplierRepo
}

func TestSupplierService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := setupSupplierService(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, supplier *domain.Supplier) error {
				supplier.ID = domain.ID("ccddaabbee112233aabbccdd")
				return nil
			})

		supplier, err := svc.Create(context.Background(), &dto.CreateSupplierRequest{
			Name:  "Acme Supplies",
			Email: "sales@acme.example",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if supplier.ID == "" {
			t.Fatal("expected supplier ID to be assigned")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		svc, repo := setupSupplierService(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := svc.Create(context.Background(), &dto.CreateSupplierRequest{Name: "Acme"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestSupplierService_Exists(t *testing.T) {
	supplierID := domain.ID("ccddaabbee112233aabbccdd")

	t.Run("exists", func(t *testing.T) {
		svc, repo := setupSupplierService(t)

		repo.EXPECT().
			Exists(gomock.Any(), supplierID).
			Return(true, nil)

		if err := svc.Exists(context.Background(), supplierID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupSupplierService(t)

		repo.EXPECT().
			Exists(gomock.Any(), supplierID).
			Return(false, serviceerrors.NewNotFoundError("entity not found"))

		err := svc.Exists(context.Background(), supplierID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("transient lookup error is swallowed", func(t *testing.T) {
		svc, repo := setupSupplierService(t)

		repo.EXPECT().
			Exists(gomock.Any(), supplierID).
			Return(false, errors.New("db error"))

		if err := svc.Exists(context.Background(), supplierID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
