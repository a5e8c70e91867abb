package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"greencart/internal/auth"
	apperrors "greencart/internal/errors"
	"greencart/internal/model"
	"greencart/internal/repository"
)

// CreateReviewInput is the payload for reviewing a product. Rating arrives
// untyped from JSON: numbers and strings with either decimal separator are
// accepted.
type CreateReviewInput struct {
	ProductID string
	Rating    interface{}
	Comment   string
}

// ReviewService exposes review operations.
type ReviewService interface {
	Create(ctx context.Context, actor auth.Actor, in CreateReviewInput) (*model.Review, error)
	ListForProduct(ctx context.Context, productID string) ([]model.Review, error)
	Delete(ctx context.Context, actor auth.Actor, reviewID string) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	orders  repository.OrderRepository
}

// NewReviewService builds a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, orders repository.OrderRepository) ReviewService {
	return &reviewService{reviews: reviews, orders: orders}
}

// Create records a review. The author must have at least one delivered order
// containing the product, and may review a product only once; the second rule
// is enforced by the store's unique index and translated here to a conflict.
func (s *reviewService) Create(ctx context.Context, actor auth.Actor, in CreateReviewInput) (*model.Review, error) {
	if err := auth.Require(actor, model.RoleConsumer); err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(in.ProductID)
	if err != nil {
		return nil, apperrors.Validation("productId is required")
	}

	rating, err := parseRating(in.Rating)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) || rating < 1 || rating > 5 {
		return nil, apperrors.Validation("rating must be a number between 1 and 5")
	}

	comment := in.Comment
	if utf8.RuneCountInString(comment) > model.MaxReviewCommentLength {
		return nil, apperrors.Validation("comment must be at most 500 characters")
	}

	delivered, err := s.orders.HasDeliveredOrderWith(ctx, actor.UserID, productID)
	if err != nil {
		return nil, fmt.Errorf("check delivered orders: %w", err)
	}
	if !delivered {
		return nil, apperrors.Forbidden("you can only review a product after a delivered order")
	}

	review := &model.Review{
		ProductID: productID,
		UserID:    actor.UserID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("you have already reviewed this product")
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// ListForProduct returns a product's reviews, newest first, with reviewer
// names resolved. Public, no auth required.
func (s *reviewService) ListForProduct(ctx context.Context, productID string) ([]model.Review, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.Validation("invalid product id")
	}
	reviews, err := s.reviews.ListByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Delete removes a review. Only the author may delete it.
func (s *reviewService) Delete(ctx context.Context, actor auth.Actor, reviewID string) error {
	if err := auth.Require(actor, model.RoleConsumer); err != nil {
		return err
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return apperrors.NotFound("review not found")
	}

	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("review not found")
		}
		return fmt.Errorf("find review: %w", err)
	}

	if review.UserID != actor.UserID {
		return apperrors.Forbidden("you can only delete your own review")
	}

	if err := s.reviews.Delete(ctx, review.ID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// parseRating accepts JSON numbers and strings using either "." or "," as the
// decimal separator.
func parseRating(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	case string:
		return strconv.ParseFloat(strings.Replace(strings.TrimSpace(x), ",", ".", 1), 64)
	default:
		return 0, fmt.Errorf("rating is not a number")
	}
}
