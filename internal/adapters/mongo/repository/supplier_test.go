package repository_test

import (
	"context"
	"testing"

	"github.com/vendora/marketplace/internal/adapters/mongo/repository"
	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
)

func TestSupplierRepository_Create(t *testing.T) {
	repo := repository.NewSupplierRepository(testDB)
	ctx := context.Background()

	t.Run("creates supplier and assigns ID", func(t *testing.T) {
		supplier := domain.NewSupplier("Acme Supplies", "sales@acme.example", "+1-555-0100")

		err := repo.Create(ctx, supplier)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if supplier.ID == "" {
			t.Fatal("expected supplier ID to be assigned")
		}
		if len(string(supplier.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", supplier.ID)
		}
	})
}

func TestSupplierRepository_GetByID(t *testing.T) {
	repo := repository.NewSupplierRepository(testDB)
	ctx := context.Background()

	t.Run("returns supplier by ID", func(t *testing.T) {
		supplier := domain.NewSupplier("Acme Supplies", "sales@acme.example", "")
		if err := repo.Create(ctx, supplier); err != nil {
			t.Fatalf("setup: create supplier failed: %v", err)
		}

		found, err := repo.GetByID(ctx, supplier.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.Name != supplier.Name {
			t.Fatalf("expected name %q, got %q", supplier.Name, found.Name)
		}
		if found.Email != supplier.Email {
			t.Fatalf("expected email %q, got %q", supplier.Email, found.Email)
		}
	})

	t.Run("returns not found for non-existing ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "aabbccddee112233aabb0000")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestSupplierRepository_Exists(t *testing.T) {
	repo := repository.NewSupplierRepository(testDB)
	ctx := context.Background()

	t.Run("returns true for existing supplier", func(t *testing.T) {
		supplier := domain.NewSupplier("Acme Supplies", "", "")
		if err := repo.Create(ctx, supplier); err != nil {
			t.Fatalf("setup: create supplier failed: %v", err)
		}

		exists, err := repo.Exists(ctx, supplier.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !exists {
			t.Fatal("expected supplier to exist")
		}
	})

	t.Run("returns not found for non-existing supplier", func(t *testing.T) {
		_, err := repo.Exists(ctx, "aabbccddee112233aabb0000")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		_, err := repo.Exists(ctx, "bad-id")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestSupplierRepository_GetAll(t *testing.T) {
	freshDB := testClient.Database("test_supplier_getall")
	repo := repository.NewSupplierRepository(freshDB)
	ctx := context.Background()

	t.Run("returns empty list when no suppliers", func(t *testing.T) {
		suppliers, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(suppliers) != 0 {
			t.Fatalf("expected 0 suppliers, got %d", len(suppliers))
		}
	})

	t.Run("returns all created suppliers", func(t *testing.T) {
		_ = repo.Create(ctx, domain.NewSupplier("Supplier 1", "", ""))
		_ = repo.Create(ctx, domain.NewSupplier("Supplier 2", "", ""))

		suppliers, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(suppliers) != 2 {
			t.Fatalf("expected 2 suppliers, got %d", len(suppliers))
		}
	})
}
