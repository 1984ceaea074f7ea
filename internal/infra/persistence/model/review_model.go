package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Rating is bounded by a check
// constraint matching the domain range.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content   string    `gorm:"type:text"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
