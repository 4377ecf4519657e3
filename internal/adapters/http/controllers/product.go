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

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	OwnerID       string    `json:"owner_id"`
	SupplierID    string    `json:"supplier_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            string(product.ID),
		Name:          product.Name,
		Category:      product.Category,
		Description:   product.Description,
		Price:         int(product.Price),
		Quantity:      product.Quantity,
		MinStockLevel: product.MinStockLevel,
		OwnerID:       string(product.OwnerID),
		SupplierID:    string(product.SupplierID),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new product in the owner's inventory
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetProductByID godoc
// @Summary     Get product by ID
// @Description Returns a single product by its ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// GetAll godoc
// @Summary     List all products
// @Description Returns all products
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	products, err := pc.productService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}
