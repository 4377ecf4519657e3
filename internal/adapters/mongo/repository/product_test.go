package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/vendora/marketplace/internal/adapters/mongo/repository"
	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func createTestProduct(t *testing.T, repo interface {
	Create(ctx context.Context, product *domain.Product) error
}, quantity, minStockLevel int, ownerID domain.ID) *domain.Product {
	t.Helper()
	product := domain.NewProduct("Test Product", "widgets", "a test product",
		domain.NewAmountFromCents(2999), quantity, minStockLevel, ownerID, "")
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func TestProductRepository_Create(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("creates product and assigns ID", func(t *testing.T) {
		product := domain.NewProduct("Widget", "widgets", "a widget",
			domain.NewAmountFromCents(1500), 100, 10, "", "")

		err := repo.Create(ctx, product)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID == "" {
			t.Fatal("expected product ID to be assigned")
		}
		if len(string(product.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", product.ID)
		}
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("returns product by ID", func(t *testing.T) {
		created := createTestProduct(t, repo, 50, 5, "")

		found, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID != created.ID {
			t.Fatalf("expected id %s, got %s", created.ID, found.ID)
		}
		if found.Name != created.Name {
			t.Fatalf("expected name %q, got %q", created.Name, found.Name)
		}
		if found.Price != created.Price {
			t.Fatalf("expected price %d, got %d", created.Price, found.Price)
		}
		if found.Quantity != created.Quantity {
			t.Fatalf("expected quantity %d, got %d", created.Quantity, found.Quantity)
		}
		if found.MinStockLevel != created.MinStockLevel {
			t.Fatalf("expected min stock level %d, got %d", created.MinStockLevel, found.MinStockLevel)
		}
	})

	t.Run("returns not found for non-existing ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "aabbccddee112233aabbccdd")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "bad-id")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductRepository_FindByIDs(t *testing.T) {
	// Use a fresh database to avoid pollution from other tests
	freshDB := testClient.Database("test_product_findbyids")
	repo := repository.NewProductRepository(freshDB)
	ctx := context.Background()

	t.Run("resolves all requested products", func(t *testing.T) {
		p1 := createTestProduct(t, repo, 10, 2, "")
		p2 := createTestProduct(t, repo, 20, 2, "")

		products, err := repo.FindByIDs(ctx, []domain.ID{p1.ID, p2.ID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
	})

	t.Run("fails when any ID is unknown", func(t *testing.T) {
		p1 := createTestProduct(t, repo, 10, 2, "")

		_, err := repo.FindByIDs(ctx, []domain.ID{p1.ID, "aabbccddee112233aabbccdd"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductRepository_DeductStock(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("deducts stock and returns remaining quantity", func(t *testing.T) {
		product := createTestProduct(t, repo, 10, 2, "")

		remaining, err := repo.DeductStock(ctx, product.ID, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if remaining != 7 {
			t.Fatalf("expected remaining 7, got %d", remaining)
		}

		updated, _ := repo.GetByID(ctx, product.ID)
		if updated.Quantity != 7 {
			t.Fatalf("expected quantity 7, got %d", updated.Quantity)
		}
	})

	t.Run("fails when insufficient stock", func(t *testing.T) {
		product := createTestProduct(t, repo, 2, 2, "")

		_, err := repo.DeductStock(ctx, product.ID, 5)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConsistency) {
			t.Fatalf("expected KindConsistency, got %v", err)
		}

		// Quantity should remain unchanged
		unchanged, _ := repo.GetByID(ctx, product.ID)
		if unchanged.Quantity != 2 {
			t.Fatalf("expected quantity 2 (unchanged), got %d", unchanged.Quantity)
		}
	})

	t.Run("deducts exact stock to zero", func(t *testing.T) {
		product := createTestProduct(t, repo, 5, 2, "")

		remaining, err := repo.DeductStock(ctx, product.ID, 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if remaining != 0 {
			t.Fatalf("expected remaining 0, got %d", remaining)
		}
	})

	t.Run("fails for non-existing product", func(t *testing.T) {
		_, err := repo.DeductStock(ctx, "aabbccddee112233aabbccdd", 1)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConsistency) {
			t.Fatalf("expected KindConsistency, got %v", err)
		}
	})

	t.Run("fails for invalid ID", func(t *testing.T) {
		_, err := repo.DeductStock(ctx, "bad-id", 1)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("concurrent deductions never drive quantity negative", func(t *testing.T) {
		product := createTestProduct(t, repo, 5, 2, "")

		var wg sync.WaitGroup
		errs := make([]error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = repo.DeductStock(ctx, product.ID, 1)
			}(i)
		}
		wg.Wait()

		var successes int
		for _, err := range errs {
			if err == nil {
				successes++
			} else if !serviceerrors.IsOfKind(err, serviceerrors.KindConsistency) {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if successes != 5 {
			t.Fatalf("expected exactly 5 successful deductions, got %d", successes)
		}

		final, _ := repo.GetByID(ctx, product.ID)
		if final.Quantity != 0 {
			t.Fatalf("expected final quantity 0, got %d", final.Quantity)
		}
	})
}

func TestProductRepository_RestoreStock(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("restores stock", func(t *testing.T) {
		product := createTestProduct(t, repo, 10, 2, "")
		if _, err := repo.DeductStock(ctx, product.ID, 4); err != nil {
			t.Fatalf("setup: deduct failed: %v", err)
		}

		if err := repo.RestoreStock(ctx, product.ID, 4); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		restored, _ := repo.GetByID(ctx, product.ID)
		if restored.Quantity != 10 {
			t.Fatalf("expected quantity 10, got %d", restored.Quantity)
		}
	})

	t.Run("fails for non-existing product", func(t *testing.T) {
		err := repo.RestoreStock(ctx, "aabbccddee112233aabbccdd", 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductRepository_CountByOwner(t *testing.T) {
	freshDB := testClient.Database("test_product_counts")
	repo := repository.NewProductRepository(freshDB)
	ctx := context.Background()

	ownerID := domain.ID(primitive.NewObjectID().Hex())
	otherOwner := domain.ID(primitive.NewObjectID().Hex())

	createTestProduct(t, repo, 10, 2, ownerID)
	createTestProduct(t, repo, 20, 2, ownerID)
	createTestProduct(t, repo, 30, 2, otherOwner)

	count, err := repo.CountByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products for owner, got %d", count)
	}
}

func TestProductRepository_CountLowStockByOwner(t *testing.T) {
	freshDB := testClient.Database("test_product_lowstock")
	repo := repository.NewProductRepository(freshDB)
	ctx := context.Background()

	ownerID := domain.ID(primitive.NewObjectID().Hex())

	createTestProduct(t, repo, 2, 5, ownerID)  // low: 0 < 2 < 5
	createTestProduct(t, repo, 0, 5, ownerID)  // depleted, not low
	createTestProduct(t, repo, 5, 5, ownerID)  // at minimum, not low
	createTestProduct(t, repo, 10, 5, ownerID) // healthy

	count, err := repo.CountLowStockByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 low-stock product, got %d", count)
	}
}
