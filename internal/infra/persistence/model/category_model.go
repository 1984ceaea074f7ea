// Package model holds the GORM persistence models mirroring the marketplace
// tables. The domain layer never sees these types; the postgres repositories
// map them to entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. PostgreSQL generates UUIDs
// via uuid_generate_v7().
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
