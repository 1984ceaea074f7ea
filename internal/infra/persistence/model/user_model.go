package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Deleting a user cascades to their
// orders and reviews; role grants live in the 'user_roles' join table.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FarmID       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Farm    *FarmModel    `gorm:"foreignKey:FarmID"`
	Roles   []RoleModel   `gorm:"many2many:user_roles"`
	Orders  []OrderModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews []ReviewModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
