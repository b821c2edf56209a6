package model

import (
	"time"
)

// ImageModel is the GORM-specific struct for the 'images' table.
// (entity_type, entity_id) is a polymorphic reference to a spot or a landmark.
type ImageModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	EntityType string `gorm:"type:varchar(20);not null;index:idx_images_on_entity"`
	EntityID   string `gorm:"type:varchar(64);not null;index:idx_images_on_entity"`
	URL        string `gorm:"type:text;not null"`
	IsPrimary  bool   `gorm:"not null;default:false"`
	OrderIndex int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
