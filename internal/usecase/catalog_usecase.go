// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"encoding/json"
	"time"
)

// GeoPoint is a WGS84 coordinate supplied by the caller.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// PlaceView is the public shape shared by spot and landmark responses.
type PlaceView struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	Location         string          `json:"location"`
	Address          string          `json:"address"`
	Hours            json.RawMessage `json:"hours"`
	Phone            *string         `json:"phone"`
	Website          *string         `json:"website"`
	Image            string          `json:"image"`
	Images           []string        `json:"images"`
	Latitude         *float64        `json:"latitude"`
	Longitude        *float64        `json:"longitude"`
	Rating           float64         `json:"rating"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// SpotView is the public shape of a spot.
type SpotView struct {
	PlaceView
	PriceRange     string   `json:"priceRange"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
}

// LandmarkView is the public shape of a landmark.
type LandmarkView struct {
	PlaceView
	History      string `json:"history"`
	AdmissionFee string `json:"admissionFee"`
}

// CatalogUsecase defines the public read operations over spots and landmarks.
type CatalogUsecase interface {
	// ListSpots returns every spot. When near is set, spots are ordered by distance from it
	// and carry DistanceMeters; spots without coordinates sort last.
	ListSpots(ctx context.Context, near *GeoPoint) ([]*SpotView, error)

	GetSpot(ctx context.Context, id string) (*SpotView, error)
	ListLandmarks(ctx context.Context) ([]*LandmarkView, error)
	GetLandmark(ctx context.Context, id string) (*LandmarkView, error)

	// LandmarkQRCode renders a PNG QR code linking to the landmark's public page.
	LandmarkQRCode(ctx context.Context, id string) ([]byte, error)
}
