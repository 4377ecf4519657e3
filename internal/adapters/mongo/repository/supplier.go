package repository

import (
	"context"

	"github.com/vendora/marketplace/internal/adapters/mongo/document"
	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/port"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SupplierRepository struct {
	*BaseRepository[document.SupplierDocument]
	collection *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) port.SupplierPort {
	return &SupplierRepository{
		BaseRepository: NewBaseRepository[document.SupplierDocument](db, "suppliers"),
		collection:     db.Collection("suppliers"),
	}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	doc := document.ToSupplierDocument(supplier)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	supplier.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Supplier, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *SupplierRepository) GetAll(ctx context.Context) ([]*domain.Supplier, error) {
	docs, err := r.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	suppliers := make([]*domain.Supplier, len(docs))
	for i, doc := range docs {
		suppliers[i] = doc.ToDomain()
	}

	return suppliers, nil
}

func (r *SupplierRepository) Exists(ctx context.Context, id domain.ID) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return false, parseError(err)
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, parseError(err)
	}
	if count == 0 {
		return false, serviceerrors.NewNotFoundError("entity not found")
	}

	return true, nil
}
