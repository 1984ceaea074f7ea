package model

import (
	"time"

	"github.com/google/uuid"
)

// StockLinkModel mirrors the 'stock_links' table. No uniqueness constraint on
// (product_id, farm_id); duplicate rows are legal and summed by the stock
// aggregation.
type StockLinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;default:0"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockLinkModel) TableName() string {
	return "stock_links"
}
