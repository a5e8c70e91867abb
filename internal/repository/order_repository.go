package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"greencart/internal/model"
)

// OrderRepository defines order persistence operations. Orders are append-only:
// after creation only the status column is ever written.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	ListContainingProducts(ctx context.Context, productIDs []uuid.UUID) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
	HasDeliveredOrderWith(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order together with its item snapshots.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListContainingProducts returns every order holding at least one item whose
// product is in productIDs, newest first, with the ordering user resolved.
func (r *orderRepository) ListContainingProducts(ctx context.Context, productIDs []uuid.UUID) ([]model.Order, error) {
	if len(productIDs) == 0 {
		return []model.Order{}, nil
	}

	sub := r.db.Model(&model.OrderItem{}).
		Select("order_id").
		Where("product_id IN ?", productIDs)

	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Where("id IN (?)", sub).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// HasDeliveredOrderWith reports whether the user has at least one delivered
// order containing the product.
func (r *orderRepository) HasDeliveredOrderWith(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ?",
			userID, model.OrderStatusDelivered, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
