package model

import (
	"time"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID           string    `gorm:"type:varchar(64);primaryKey"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Category     string    `gorm:"type:varchar(100)"`
	Address      string    `gorm:"type:text"`
	ContactEmail string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(50)"`
	OwnerID      *string   `gorm:"type:varchar(255);index"`
	Status       string    `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
