package model

import (
	"time"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	UserID     string     `gorm:"type:varchar(255);not null;index"`
	User       *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	EntityType string     `gorm:"type:varchar(20);not null;index:idx_reviews_on_entity"`
	EntityID   string     `gorm:"type:varchar(64);not null;index:idx_reviews_on_entity"`
	Rating     int        `gorm:"not null"`
	Comment    string     `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
