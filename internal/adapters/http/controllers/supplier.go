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

type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSupplierResponse(supplier *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        string(supplier.ID),
		Name:      supplier.Name,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		CreatedAt: supplier.CreatedAt,
	}
}

type SupplierController struct {
	supplierService *service.SupplierService
}

func NewSupplierController(supplierService *service.SupplierService) *SupplierController {
	return &SupplierController{supplierService: supplierService}
}

// CreateSupplier godoc
// @Summary     Create a supplier
// @Description Creates a new supplier
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateSupplierRequest true "Supplier data"
// @Success     201     {object} SupplierResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/suppliers [post]
func (sc *SupplierController) CreateSupplier(c *gin.Context) {
	var request dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	supplier, err := sc.supplierService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewSupplierResponse(supplier))
}

// GetAll godoc
// @Summary     List all suppliers
// @Description Returns all suppliers
// @Tags        suppliers
// @Produce     json
// @Success     200 {array} SupplierResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/suppliers [get]
func (sc *SupplierController) GetAll(c *gin.Context) {
	suppliers, err := sc.supplierService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		response[i] = NewSupplierResponse(supplier)
	}

	c.JSON(http.StatusOK, response)
}
