package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/dto"
	"github.com/vendora/marketplace/internal/core/logger"
	"github.com/vendora/marketplace/internal/core/port"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
	"github.com/vendora/marketplace/internal/core/utils"
)

const (
	ORDER_MAX_ITEMS = 100
	orderCacheTTL   = 15 * time.Minute
)

// OrderService validates and creates orders against the product ledger
// and drives the order status lifecycle. Stock is deducted exactly once,
// at creation, and restored according to the stock policy (by default,
// only on cancellation).
type OrderService struct {
	orderRepository port.OrderPort
	productService  *ProductService
	supplierService *SupplierService
	orderCache      port.CachePort[domain.Order]
	idempotency     *IdempotencyService[domain.Order]
	txManager       port.TransactionManager
	stockPolicy     domain.StockPolicy
}

func NewOrderService(
	orderRepository port.OrderPort,
	productService *ProductService,
	supplierService *SupplierService,
	orderCache port.CachePort[domain.Order],
	idempotency *IdempotencyService[domain.Order],
	txManager port.TransactionManager,
	stockPolicy domain.StockPolicy,
) *OrderService {
	if stockPolicy == nil {
		stockPolicy = domain.DefaultStockPolicy()
	}
	return &OrderService{
		orderRepository: orderRepository,
		productService:  productService,
		supplierService: supplierService,
		orderCache:      orderCache,
		idempotency:     idempotency,
		txManager:       txManager,
		stockPolicy:     stockPolicy,
	}
}

func (s *OrderService) getCacheKey(orderID domain.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	cached, err := s.orderCache.Get(ctx, s.getCacheKey(orderID))
	if err != nil {
		logger.Error(ctx, "cache: get order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
	if cached != nil {
		logger.Info(ctx, "order found in cache", map[string]any{
			"order_id": orderID,
		})
		return cached, nil
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(orderID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": orderID,
		})
	}

	return order, nil
}

func validateCreateOrderRequest(request *dto.CreateOrderRequest) error {
	if request.SupplierID == "" {
		return serviceerrors.NewInvalidRequestError("supplier is required")
	}
	if request.AccountName == "" {
		return serviceerrors.NewInvalidRequestError("account name is required")
	}
	if len(request.Items) == 0 {
		return serviceerrors.NewInvalidRequestError("order must have at least one item")
	}
	if len(request.Items) > ORDER_MAX_ITEMS {
		return serviceerrors.NewUnprocessableEntityError("order items limit exceeded")
	}
	for _, item := range request.Items {
		if item.ProductID == "" {
			return serviceerrors.NewInvalidRequestError("item product id is required")
		}
		if item.Quantity <= 0 {
			return serviceerrors.NewInvalidRequestError("item quantity must be positive")
		}
	}
	return nil
}

func initialOrderStatus(raw string) (domain.OrderStatus, error) {
	switch domain.OrderStatus(raw) {
	case domain.OrderStatusPending, "":
		return domain.OrderStatusPending, nil
	case domain.OrderStatusNew:
		return domain.OrderStatusNew, nil
	default:
		return "", serviceerrors.NewInvalidRequestError("initial status must be pending or new")
	}
}

// resolveOrderItems looks up every referenced product, snapshots the
// current unit price, and verifies availability before any mutation. A
// single unknown product id fails the whole request.
func (s *OrderService) resolveOrderItems(ctx context.Context, dtoItems []dto.OrderItem) ([]domain.OrderItem, error) {
	ids := make([]domain.ID, len(dtoItems))
	for i, item := range dtoItems {
		ids[i] = item.ProductID
	}

	products, err := s.productService.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[domain.ID]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]domain.OrderItem, len(dtoItems))
	for i, item := range dtoItems {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", item.ProductID))
		}
		if product.Quantity < item.Quantity {
			return nil, serviceerrors.NewInsufficientStockError(string(product.ID))
		}
		items[i] = *domain.NewOrderItem(product.ID, product.Name, item.Quantity, product.Price)
	}
	return items, nil
}

// deductItems applies the per-product conditional decrements. On any
// failure it restores every already-applied decrement before returning,
// so no partial reservation survives. The restore also runs inside an
// aborting transaction, where it is a harmless no-op after rollback.
func (s *OrderService) deductItems(ctx context.Context, items []domain.OrderItem) error {
	applied := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if _, err := s.productService.DeductStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.compensateDeducts(ctx, applied)
			if serviceerrors.IsOfKind(err, serviceerrors.KindConsistency) ||
				serviceerrors.IsOfKind(err, serviceerrors.KindInsufficientStock) {
				return serviceerrors.NewInsufficientStockError(string(item.ProductID))
			}
			return err
		}
		applied = append(applied, item)
	}
	return nil
}

func (s *OrderService) compensateDeducts(ctx context.Context, applied []domain.OrderItem) {
	for _, item := range applied {
		if err := s.productService.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error(ctx, "order: stock compensation failed", err, map[string]any{
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			})
		}
	}
}

func (s *OrderService) processOrder(ctx context.Context, request *dto.CreateOrderRequest) (*domain.Order, error) {
	if err := validateCreateOrderRequest(request); err != nil {
		return nil, err
	}

	status, err := initialOrderStatus(request.Status)
	if err != nil {
		return nil, err
	}

	if err := s.supplierService.Exists(ctx, request.SupplierID); err != nil {
		return nil, err
	}

	items, err := s.resolveOrderItems(ctx, request.Items)
	if err != nil {
		return nil, err
	}

	order := domain.NewOrder(request.SupplierID, request.AccountName, status, items)

	if request.TotalAmount != 0 && domain.NewAmountFromCents(request.TotalAmount) != order.TotalAmount {
		return nil, serviceerrors.NewInvalidRequestError("total amount does not match order items")
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.deductItems(txCtx, order.Items); err != nil {
			return err
		}
		if err := s.orderRepository.Create(txCtx, order); err != nil {
			s.compensateDeducts(txCtx, order.Items)
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "transaction: create order failed", err, map[string]any{
			"supplier_id": request.SupplierID,
			"account":     request.AccountName,
		})
		return nil, err
	}

	logger.Info(ctx, "Order created successfully", map[string]any{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})
	return order, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, idempotencyKey string, request *dto.CreateOrderRequest) (*domain.Order, error) {
	if idempotencyKey == "" {
		return s.processOrder(ctx, request)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	order, err := s.processOrder(ctx, request)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, order)

	return order, nil
}

// TransitionStatus moves an order to a new status. Transitions outside
// the status table are rejected, which makes a second cancellation a
// rejected no-op rather than a double restock. The ledger effect for the
// target status and the status update commit in one transaction.
func (s *OrderService) TransitionStatus(ctx context.Context, orderID domain.ID, target domain.OrderStatus) (*domain.Order, error) {
	if !target.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("invalid status")
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == target {
		return nil, serviceerrors.NewUnprocessableEntityError("order already has this status")
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, serviceerrors.NewUnprocessableEntityError(
			fmt.Sprintf("cannot transition order from %s to %s", order.Status, target))
	}

	oldStatus := order.Status
	event := domain.NewOrderStatusChangedEvent(orderID, target, oldStatus, time.Now(), order.AccountName)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.applyStockEffect(txCtx, order, target); err != nil {
			return err
		}
		return s.orderRepository.UpdateStatusWithOutbox(txCtx, orderID, target, event)
	})
	if err != nil {
		logger.Error(ctx, "transaction: order status transition failed", err, map[string]any{
			"order_id":   orderID,
			"old_status": oldStatus,
			"new_status": target,
		})
		return nil, err
	}

	order.Status = target
	order.UpdatedAt = time.Now()
	if err := s.orderCache.Set(ctx, s.getCacheKey(orderID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: update order failed", err, map[string]any{
			"order_id": orderID,
		})
	}

	logger.Info(ctx, "Order status updated", map[string]any{
		"order_id":   orderID,
		"old_status": oldStatus,
		"new_status": target,
	})

	return order, nil
}

func (s *OrderService) applyStockEffect(ctx context.Context, order *domain.Order, target domain.OrderStatus) error {
	switch s.stockPolicy.EffectFor(target) {
	case domain.StockEffectRestock:
		for _, item := range order.Items {
			if err := s.productService.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
	case domain.StockEffectDeduct:
		return s.deductItems(ctx, order.Items)
	}
	return nil
}
