package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are the session provider's subjects.
// It is an exported type so it can be used by migrations and tooling from other packages.
type UserModel struct {
	ID        string `gorm:"type:varchar(255);primaryKey"`
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Name      string `gorm:"type:varchar(100)"`
	Role      string `gorm:"type:varchar(20);not null;default:user;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
