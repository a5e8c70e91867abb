package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"greencart/internal/auth"
	apperrors "greencart/internal/errors"
	"greencart/internal/model"
	"greencart/internal/repository"
)

// CreateProductInput is the payload for adding a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// ProductSummary is a catalog entry enriched with its review aggregate. The
// aggregate is recomputed on every listing call; it is never stored.
type ProductSummary struct {
	model.Product
	AvgRating    float64 `json:"avgRating"`
	ReviewsCount int64   `json:"reviewsCount"`
}

// ProductService exposes catalog operations.
type ProductService interface {
	Create(ctx context.Context, actor auth.Actor, in CreateProductInput) (*model.Product, error)
	ListMine(ctx context.Context, actor auth.Actor) ([]model.Product, error)
	List(ctx context.Context) ([]ProductSummary, error)
}

type productService struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
}

// NewProductService builds a ProductService.
func NewProductService(products repository.ProductRepository, reviews repository.ReviewRepository) ProductService {
	return &productService{products: products, reviews: reviews}
}

// Create adds a product owned by the acting producer.
func (s *productService) Create(ctx context.Context, actor auth.Actor, in CreateProductInput) (*model.Product, error) {
	if err := auth.Require(actor, model.RoleProducer, model.RoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if in.Price.IsNegative() {
		return nil, apperrors.Validation("price must be zero or positive")
	}

	product := &model.Product{
		ProducerID:  actor.UserID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// ListMine returns the acting producer's own catalog, newest first.
func (s *productService) ListMine(ctx context.Context, actor auth.Actor) ([]model.Product, error) {
	if err := auth.Require(actor, model.RoleProducer, model.RoleAdmin); err != nil {
		return nil, err
	}
	products, err := s.products.ListByProducer(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// List returns the public catalog with producer names and per-product review
// aggregates. Products with no reviews report avgRating 0 and reviewsCount 0.
func (s *productService) List(ctx context.Context) ([]ProductSummary, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	stats, err := s.reviews.RatingStatsByProduct(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("aggregate reviews: %w", err)
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summary := ProductSummary{Product: p}
		if st, ok := stats[p.ID]; ok {
			summary.AvgRating = math.Round(st.AvgRating*100) / 100
			summary.ReviewsCount = st.ReviewsCount
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
