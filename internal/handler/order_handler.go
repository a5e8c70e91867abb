package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "greencart/internal/errors"
	"greencart/internal/service"
)

// OrderHandler handles checkout and fulfilment endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrderRequest represents a checkout request.
type PlaceOrderRequest struct {
	Items []service.OrderItemInput `json:"items"`
}

// UpdateStatusRequest represents an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Place godoc
// @Summary Place an order from a cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlaceOrderRequest true "Cart items"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	order, err := h.orderService.Place(c.Request().Context(), actor, req.Items)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, order)
}

// ListMine godoc
// @Summary List the caller's own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders/me [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := h.orderService.ListMine(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// ListForProducer godoc
// @Summary List orders containing the acting producer's products
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 403 {object} errors.ErrorResponse
// @Router /producer/orders [get]
func (h *OrderHandler) ListForProducer(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := h.orderService.ListForProducer(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary Update an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.Validation(err.Error()))
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}
