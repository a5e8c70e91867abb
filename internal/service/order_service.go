package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"greencart/internal/auth"
	apperrors "greencart/internal/errors"
	"greencart/internal/model"
	"greencart/internal/repository"
)

// orderFees is the flat fee applied to any non-empty order.
var orderFees = decimal.NewFromFloat(2.0)

// OrderItemInput is one requested line of a checkout. Qty arrives untyped from
// JSON and is coerced: minimum 1, default 1 when absent or invalid.
type OrderItemInput struct {
	ProductID string      `json:"productId"`
	Qty       interface{} `json:"qty"`
}

// OrderService exposes checkout and fulfilment operations.
type OrderService interface {
	Place(ctx context.Context, actor auth.Actor, items []OrderItemInput) (*model.Order, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	ListForProducer(ctx context.Context, actor auth.Actor) ([]model.Order, error)
	UpdateStatus(ctx context.Context, actor auth.Actor, orderID, status string) (*model.Order, error)
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderService builds an OrderService.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) OrderService {
	return &orderService{orders: orders, products: products}
}

// Place builds an order from a cart request. Every product is resolved in one
// batch lookup and the whole order is rejected when any id is unknown; no
// partial order is ever created. Item name and price are snapshotted at
// lookup time, so later catalog changes never affect the order.
func (s *orderService) Place(ctx context.Context, actor auth.Actor, items []OrderItemInput) (*model.Order, error) {
	if err := auth.Require(actor, model.RoleConsumer); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.Validation("items is required")
	}

	distinct := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apperrors.Validation("one or more products not found")
		}
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	products, err := s.products.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}
	if len(products) != len(distinct) {
		return nil, apperrors.Validation("one or more products not found")
	}

	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	subtotal := decimal.Zero
	snapshots := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		id, _ := uuid.Parse(item.ProductID)
		p := byID[id]
		qty := coerceQty(item.Qty)
		snapshots = append(snapshots, model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       qty,
		})
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	fees := decimal.Zero
	if len(snapshots) > 0 {
		fees = orderFees
	}

	order := &model.Order{
		UserID:   actor.UserID,
		Items:    snapshots,
		Subtotal: subtotal,
		Fees:     fees,
		Total:    subtotal.Add(fees),
		Status:   model.OrderStatusPreparing,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (s *orderService) ListMine(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListForProducer returns every order containing at least one item from the
// acting producer's catalog, newest first, with the ordering user resolved.
func (s *orderService) ListForProducer(ctx context.Context, actor auth.Actor) ([]model.Order, error) {
	if err := auth.Require(actor, model.RoleProducer, model.RoleAdmin); err != nil {
		return nil, err
	}

	productIDs, err := s.products.ListIDsByProducer(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list producer products: %w", err)
	}

	orders, err := s.orders.ListContainingProducts(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list producer orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to the given status. Unless the actor is admin,
// the order must contain at least one item from the actor's catalog.
func (s *orderService) UpdateStatus(ctx context.Context, actor auth.Actor, orderID, status string) (*model.Order, error) {
	if err := auth.Require(actor, model.RoleProducer, model.RoleAdmin); err != nil {
		return nil, err
	}

	newStatus := model.OrderStatus(status)
	if !newStatus.Valid() {
		return nil, apperrors.Validation("invalid status")
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperrors.NotFound("order not found")
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	if actor.Role != model.RoleAdmin {
		productIDs, err := s.products.ListIDsByProducer(ctx, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("list producer products: %w", err)
		}
		mine := make(map[uuid.UUID]bool, len(productIDs))
		for _, pid := range productIDs {
			mine[pid] = true
		}
		owns := false
		for _, item := range order.Items {
			if mine[item.ProductID] {
				owns = true
				break
			}
		}
		if !owns {
			return nil, apperrors.Forbidden("you cannot modify this order")
		}
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, newStatus); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = newStatus
	return order, nil
}

// coerceQty turns an untyped JSON quantity into a usable count.
func coerceQty(v interface{}) int {
	switch q := v.(type) {
	case int:
		if q < 1 {
			return 1
		}
		return q
	case float64:
		return qtyFromFloat(q)
	case json.Number:
		if f, err := q.Float64(); err == nil {
			return qtyFromFloat(f)
		}
	case string:
		if f, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(q), ",", ".", 1), 64); err == nil {
			return qtyFromFloat(f)
		}
	}
	return 1
}

// qtyFromFloat rounds to the nearest whole count, keeping the value in int
// range before the conversion.
func qtyFromFloat(f float64) int {
	if math.IsNaN(f) || f < 1 {
		return 1
	}
	f = math.Round(f)
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
