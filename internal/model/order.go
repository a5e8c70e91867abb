package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPreparing OrderStatus = "en_preparation"
	OrderStatusReady     OrderStatus = "prete"
	OrderStatusDelivered OrderStatus = "terminee"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderItem is an immutable snapshot of a product at order-creation time.
// Name and price are copied from the catalog and never track later changes.
type OrderItem struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	OrderID   uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	ProductID uuid.UUID       `json:"productId" gorm:"type:char(36);not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null" swaggertype:"number"`
	Qty       int             `json:"qty" gorm:"not null"`
}

// Order is a consumer checkout. It exclusively owns its item snapshots and is
// never deleted; only the status changes after creation.
type Order struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null" swaggertype:"number"`
	Fees      decimal.Decimal `json:"fees" gorm:"type:decimal(10,2);not null" swaggertype:"number"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null" swaggertype:"number"`
	Status    OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'en_preparation';index"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
