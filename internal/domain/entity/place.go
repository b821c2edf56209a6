package entity

import "time"

// PlaceInfo holds the fields shared by spots and landmarks.
type PlaceInfo struct {
	ID               string
	Name             string
	Category         string
	Description      string
	ShortDescription string
	Location         string // Neighbourhood or area name.
	Address          string
	Hours            *string // Serialized JSON opening hours, nil when unknown.
	Phone            *string
	Website          *string
	Image            string // Legacy single image URL.
	Latitude         *float64
	Longitude        *float64
	Rating           float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Spot is a place to eat, drink or shop.
type Spot struct {
	PlaceInfo
	PriceRange string
}

// Landmark is a sight worth visiting.
type Landmark struct {
	PlaceInfo
	History      string
	AdmissionFee string
}
