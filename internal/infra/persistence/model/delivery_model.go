package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel mirrors the 'deliveries' table. One delivery per order.
type DeliveryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Status    string    `gorm:"type:varchar(30);not null"`
	Date      time.Time
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
