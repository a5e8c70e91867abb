package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "greencart/internal/errors"
	"greencart/internal/service"
)

// ReviewHandler handles product review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReviewRequest represents a review creation request. Rating may be a
// JSON number or a string using "." or "," as decimal separator.
type CreateReviewRequest struct {
	ProductID string      `json:"productId"`
	Rating    interface{} `json:"rating"`
	Comment   string      `json:"comment"`
}

// Create godoc
// @Summary Review a product named in the request body
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReviewRequest true "Review data"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	review, err := h.reviewService.Create(c.Request().Context(), actor, service.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

// CreateForProduct godoc
// @Summary Review the product named in the path
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Param request body CreateReviewRequest true "Review data"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) CreateForProduct(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	review, err := h.reviewService.Create(c.Request().Context(), actor, service.CreateReviewInput{
		ProductID: c.Param("id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

// ListForProduct godoc
// @Summary List a product's reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {array} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListForProduct(c echo.Context) error {
	reviews, err := h.reviewService.ListForProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, reviews)
}

// Delete godoc
// @Summary Delete the caller's own review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.reviewService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "review deleted"})
}
