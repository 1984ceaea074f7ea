package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. TotalAmount is stored as written by
// the caller; it is not derived from line items. Deleting an order cascades
// to its line items and delivery.
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Status      string          `gorm:"type:varchar(20);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmID      uuid.UUID `gorm:"type:uuid;not null;index"`

	Delivery  *DeliveryModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	LineItems []LineItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
