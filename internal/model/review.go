package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxReviewCommentLength caps the free-text comment on a review.
const MaxReviewCommentLength = 500

// Review is a consumer rating of a product. A user may review a product at
// most once; the composite unique index makes the store enforce that.
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:char(36);not null;uniqueIndex:idx_reviews_product_user"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_reviews_product_user"`
	Rating    float64   `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"size:500"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
