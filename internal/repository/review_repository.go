package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"greencart/internal/model"
)

// RatingStats is the review aggregate for a single product.
type RatingStats struct {
	ProductID    uuid.UUID
	AvgRating    float64
	ReviewsCount int64
}

// ReviewRepository defines review persistence operations. Uniqueness per
// (product, user) is enforced by the store's composite index; Create surfaces
// a violation as gorm.ErrDuplicatedKey.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error)
	RatingStatsByProduct(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]RatingStats, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{}).Error
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// RatingStatsByProduct computes mean rating and review count grouped by
// product for the given ids.
func (r *reviewRepository) RatingStatsByProduct(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]RatingStats, error) {
	stats := make(map[uuid.UUID]RatingStats, len(productIDs))
	if len(productIDs) == 0 {
		return stats, nil
	}

	var rows []RatingStats
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("product_id, AVG(rating) AS avg_rating, COUNT(*) AS reviews_count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.ProductID] = row
	}
	return stats, nil
}
