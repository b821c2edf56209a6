package model

import (
	"time"
)

// PlaceColumns holds the columns shared by the 'spots' and 'landmarks' tables.
type PlaceColumns struct {
	ID               string   `gorm:"type:varchar(64);primaryKey"`
	Name             string   `gorm:"type:varchar(200);not null;index"`
	Category         string   `gorm:"type:varchar(100);not null;index"`
	Description      string   `gorm:"type:text"`
	ShortDescription string   `gorm:"type:varchar(500)"`
	Location         string   `gorm:"type:varchar(200)"`
	Address          string   `gorm:"type:text"`
	Hours            *string  `gorm:"type:text"`
	Phone            *string  `gorm:"type:varchar(50)"`
	Website          *string  `gorm:"type:text"`
	Image            string   `gorm:"type:text"`
	Latitude         *float64 `gorm:"type:decimal(10,8)"`
	Longitude        *float64 `gorm:"type:decimal(11,8)"`
	Rating           float64  `gorm:"type:decimal(2,1);not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SpotModel mirrors the 'spots' table.
type SpotModel struct {
	PlaceColumns `gorm:"embedded"`
	PriceRange   string `gorm:"type:varchar(10)"`
}

// TableName explicitly sets the table name for GORM.
func (SpotModel) TableName() string {
	return "spots"
}

// LandmarkModel mirrors the 'landmarks' table.
type LandmarkModel struct {
	PlaceColumns `gorm:"embedded"`
	History      string `gorm:"type:text"`
	AdmissionFee string `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (LandmarkModel) TableName() string {
	return "landmarks"
}
