package domain

import "time"

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPending, OrderStatusConfirmed,
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// orderTransitions is the allowed status graph. Cancellation is reachable
// from every non-terminal status; delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// StockEffect is the ledger side effect applied when an order reaches a
// given status.
type StockEffect int

const (
	StockEffectNone StockEffect = iota
	StockEffectRestock
	StockEffectDeduct
)

// StockPolicy maps a target status to its ledger effect. The default
// policy deducts stock once at creation and restores it on cancellation;
// deducting at shipment instead is a policy value, not a code change.
type StockPolicy map[OrderStatus]StockEffect

func DefaultStockPolicy() StockPolicy {
	return StockPolicy{
		OrderStatusCancelled: StockEffectRestock,
	}
}

func (p StockPolicy) EffectFor(status OrderStatus) StockEffect {
	return p[status]
}

type Order struct {
	ID          ID
	SupplierID  ID
	AccountName string
	Items       []OrderItem
	Status      OrderStatus
	TotalAmount Amount
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderItem struct {
	ID          ID
	ProductID   ID
	ProductName string
	Quantity    int
	UnitPrice   Amount
}

func (o *OrderItem) CalculateTotalAmount() Amount {
	return o.UnitPrice.Multiply(o.Quantity)
}

func NewOrderItem(productID ID, productName string, quantity int, unitPrice Amount) *OrderItem {
	return &OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
}

func CalculateTotalAmount(items []OrderItem) Amount {
	totalAmount := Amount(0)
	for _, item := range items {
		totalAmount = totalAmount.Add(item.UnitPrice.Multiply(item.Quantity))
	}
	return totalAmount
}

func NewOrder(supplierID ID, accountName string, status OrderStatus, items []OrderItem) *Order {
	return &Order{
		SupplierID:  supplierID,
		AccountName: accountName,
		Items:       items,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		TotalAmount: CalculateTotalAmount(items),
	}
}

type OrderCreatedEvent struct {
	OrderID     ID          `json:"order_id"`
	SupplierID  ID          `json:"supplier_id"`
	AccountName string      `json:"account_name"`
	TotalAmount Amount      `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (e *OrderCreatedEvent) GetName() string {
	return "order.created"
}

func (e *OrderCreatedEvent) GetEntityName() string {
	return "order"
}

func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		OrderID:     order.ID,
		SupplierID:  order.SupplierID,
		AccountName: order.AccountName,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
}

type OrderStatusChangedEvent struct {
	OrderID     ID          `json:"order_id"`
	Status      OrderStatus `json:"status"`
	OldStatus   OrderStatus `json:"old_status"`
	UpdatedAt   time.Time   `json:"updated_at"`
	AccountName string      `json:"account_name"`
}

func (e *OrderStatusChangedEvent) GetName() string {
	return "order.status_changed"
}

func (e *OrderStatusChangedEvent) GetEntityName() string {
	return "order"
}

func NewOrderStatusChangedEvent(orderID ID, status, oldStatus OrderStatus, updatedAt time.Time, accountName string) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		OrderID:     orderID,
		Status:      status,
		OldStatus:   oldStatus,
		UpdatedAt:   updatedAt,
		AccountName: accountName,
	}
}
