package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vendora/marketplace/internal/adapters/http/handlers"
	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/dto"
	"github.com/vendora/marketplace/internal/core/service"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
)

type OrderController struct {
	orderService *service.OrderService
}

type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unit_price"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	SupplierID  string              `json:"supplier_id"`
	AccountName string              `json:"account_name"`
	Items       []OrderItemResponse `json:"items"`
	Status      string              `json:"status"`
	TotalAmount int                 `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func NewOrderItemResponse(item domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          string(item.ID),
		ProductID:   string(item.ProductID),
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   int(item.UnitPrice),
	}
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = NewOrderItemResponse(item)
	}
	return OrderResponse{
		ID:          string(order.ID),
		SupplierID:  string(order.SupplierID),
		AccountName: order.AccountName,
		Items:       items,
		Status:      string(order.Status),
		TotalAmount: int(order.TotalAmount),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder godoc
// @Summary     Create an order
// @Description Creates a new order, reserving stock atomically, with idempotency support
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                 false "Idempotency key"
// @Param       request         body     dto.CreateOrderRequest  true  "Order data"
// @Success     201             {object} OrderResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/orders [post]
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	order, err := oc.orderService.CreateOrder(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(order))
}

// GetOrderByID godoc
// @Summary     Get order by ID
// @Description Returns a single order by its ID
// @Tags        orders
// @Produce     json
// @Param       id  path     string true "Order ID"
// @Success     200 {object} OrderResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	order, err := oc.orderService.GetOrderByID(c.Request.Context(), domain.ID(orderID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

// UpdateOrderStatus godoc
// @Summary     Transition order status
// @Description Moves an order through its status lifecycle; cancellation restores reserved stock
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id      path     string              true "Order ID"
// @Param       request body     UpdateStatusRequest  true "Target status"
// @Success     200     {object} OrderResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id}/status [patch]
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	var request UpdateStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	order, err := oc.orderService.TransitionStatus(c.Request.Context(), domain.ID(orderID), domain.OrderStatus(request.Status))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}
