package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "greencart/internal/errors"
	"greencart/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a product creation request.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
}

// Create godoc
// @Summary Create a product owned by the acting producer
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.Validation(err.Error()))
	}

	product, err := h.productService.Create(c.Request().Context(), actor, service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

// ListMine godoc
// @Summary List the acting producer's own products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 403 {object} errors.ErrorResponse
// @Router /products/mine [get]
func (h *ProductHandler) ListMine(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	products, err := h.productService.ListMine(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// List godoc
// @Summary List all products with review aggregates
// @Tags products
// @Produce json
// @Success 200 {array} service.ProductSummary
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}
