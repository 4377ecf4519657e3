package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vendora/marketplace/internal/adapters/mongo/document"
	"github.com/vendora/marketplace/internal/adapters/outbox"
	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/logger"
	"github.com/vendora/marketplace/internal/core/port"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
)

type OrderRepository struct {
	*BaseRepository[document.OrderDocument]
	db         *mongo.Database
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewOrderRepository(db *mongo.Database, outbox outbox.Repository) port.OrderPort {
	baseRepo := NewBaseRepository[document.OrderDocument](db, "orders")

	repo := &OrderRepository{
		BaseRepository: baseRepo,
		db:             db,
		collection:     db.Collection("orders"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "orders",
		})
	}

	return repo
}

func (r *OrderRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "account_name", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys: bson.D{
				{Key: "account_name", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Create inserts the order and its creation event in the outbox. Callers
// run this inside a transaction together with the stock deductions.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID != "" {
		return errors.New("cannot create order with existing ID")
	}

	doc := document.ToDocument(order)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	order.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	order.CreatedAt = doc.CreatedAt
	order.UpdatedAt = doc.UpdatedAt

	for i := range order.Items {
		order.Items[i].ID = domain.ID(doc.Items[i].ID.Hex())
	}

	event := domain.NewOrderCreatedEvent(order)
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.outbox.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Order, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *OrderRepository) GetByAccount(ctx context.Context, accountName string, limit, offset int64) ([]*domain.Order, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	filter := bson.M{"account_name": accountName}

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(docs))
	for i, doc := range docs {
		orders[i] = doc.ToDomain()
	}

	return orders, nil
}

func (r *OrderRepository) GetByStatus(ctx context.Context, status domain.OrderStatus, limit, offset int64) ([]*domain.Order, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	filter := bson.M{"status": string(status)}

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(docs))
	for i, doc := range docs {
		orders[i] = doc.ToDomain()
	}

	return orders, nil
}

// UpdateStatusWithOutbox updates the status and records the transition
// event in the outbox. The caller's transaction makes this atomic with
// any ledger side effect of the transition.
func (r *OrderRepository) UpdateStatusWithOutbox(ctx context.Context, id domain.ID, status domain.OrderStatus, event domain.Event) error {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return parseError(err)
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		return parseError(err)
	}
	if result.MatchedCount == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}

	return r.outbox.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	})
}

func (r *OrderRepository) CountByAccountAndStatus(ctx context.Context, accountName string, status domain.OrderStatus) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"account_name": accountName,
		"status":       string(status),
	})
	if err != nil {
		return 0, parseError(err)
	}

	return int(count), nil
}

// SalesTotalBetween sums total_amount over non-cancelled orders created
// in [from, to).
func (r *OrderRepository) SalesTotalBetween(ctx context.Context, accountName string, from, to time.Time) (domain.Amount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"account_name": accountName,
			"status":       bson.M{"$ne": string(domain.OrderStatusCancelled)},
			"created_at":   bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, parseError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, parseError(err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return domain.Amount(results[0].Total), nil
}

// TopProductsByQuantity ranks products by summed ordered quantity across
// all non-cancelled orders.
func (r *OrderRepository) TopProductsByQuantity(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": bson.M{"$ne": string(domain.OrderStatusCancelled)},
		}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$items.product_id",
			"name":     bson.M{"$first": "$items.product_name"},
			"quantity": bson.M{"$sum": "$items.quantity"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "quantity", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Name     string `bson:"name"`
		Quantity int    `bson:"quantity"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, parseError(err)
	}

	top := make([]domain.TopProduct, len(results))
	for i, result := range results {
		top[i] = domain.TopProduct{Name: result.Name, Quantity: result.Quantity}
	}

	return top, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
