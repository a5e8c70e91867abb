package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry owned by a producer account. Orders and reviews
// reference it by id only and never mutate it.
type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	ProducerID  uuid.UUID       `json:"producerId" gorm:"type:char(36);not null;index"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"size:1000"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null" swaggertype:"number"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Producer *User `json:"producer,omitempty" gorm:"foreignKey:ProducerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
