package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmModel mirrors the 'farms' table. Deleting a farm cascades to its
// reviews, stock links and orders at the database level.
type FarmModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Reviews    []ReviewModel    `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE"`
	StockLinks []StockLinkModel `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE"`
	Orders     []OrderModel     `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}
