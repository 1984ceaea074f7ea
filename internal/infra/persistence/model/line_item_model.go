package model

import (
	"time"

	"github.com/google/uuid"
)

// LineItemModel mirrors the 'line_items' table. ProductID has no foreign key
// constraint so a deleted product leaves a dangling reference; the order
// value computation reports that explicitly instead of the database blocking
// the delete.
type LineItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;default:0"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "line_items"
}
