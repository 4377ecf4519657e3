package repository

import (
	"context"
	"fmt"

	"github.com/vendora/marketplace/internal/adapters/mongo/document"
	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/port"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		collection:     db.Collection("products"),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

// FindByIDs resolves all ids or fails: a request referencing one unknown
// product must not produce a partial result.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error) {
	objectIDs := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(string(id))
		if err != nil {
			return nil, parseError(err)
		}
		objectIDs[i] = objectID
	}

	docs, err := r.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}

	found := make(map[primitive.ObjectID]bool, len(docs))
	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		found[doc.ID] = true
		products[i] = doc.ToDomain()
	}

	for i, objectID := range objectIDs {
		if !found[objectID] {
			return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", ids[i]))
		}
	}

	return products, nil
}

// DeductStock is the single conditional write that makes "check
// availability + decrement" atomic: the filter rejects any update that
// would drive quantity negative, and a no-match result is reported as a
// consistency failure for the caller to compensate.
func (r *ProductRepository) DeductStock(ctx context.Context, id domain.ID, quantity int) (int, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return 0, parseError(err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc document.ProductDocument
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "quantity": bson.M{"$gte": quantity}},
		bson.M{"$inc": bson.M{"quantity": -quantity}},
		opts,
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, serviceerrors.NewConsistencyError(string(id))
		}
		return 0, err
	}

	return doc.Quantity, nil
}

// RestoreStock unconditionally increments quantity. Increments commute,
// so concurrent restores need no locking.
func (r *ProductRepository) RestoreStock(ctx context.Context, id domain.ID, quantity int) error {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return parseError(err)
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"quantity": quantity}},
	)
	if err != nil {
		return parseError(err)
	}
	if result.MatchedCount == 0 {
		return serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}

	return nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}

func (r *ProductRepository) CountByOwner(ctx context.Context, ownerID domain.ID) (int, error) {
	objectID, err := primitive.ObjectIDFromHex(string(ownerID))
	if err != nil {
		return 0, parseError(err)
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"owner_id": objectID})
	if err != nil {
		return 0, parseError(err)
	}

	return int(count), nil
}

// CountLowStockByOwner counts products with 0 < quantity < min_stock_level.
func (r *ProductRepository) CountLowStockByOwner(ctx context.Context, ownerID domain.ID) (int, error) {
	objectID, err := primitive.ObjectIDFromHex(string(ownerID))
	if err != nil {
		return 0, parseError(err)
	}

	filter := bson.M{
		"owner_id": objectID,
		"quantity": bson.M{"$gt": 0},
		"$expr":    bson.M{"$lt": bson.A{"$quantity", "$min_stock_level"}},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, parseError(err)
	}

	return int(count), nil
}
