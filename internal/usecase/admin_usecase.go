package usecase

import (
	"context"
	"time"

	"localguide/internal/domain/entity"
)

// BusinessView is the admin shape of a submitted business.
type BusinessView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Address      string    `json:"address"`
	ContactEmail string    `json:"contactEmail"`
	Phone        string    `json:"phone"`
	OwnerID      *string   `json:"ownerId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SeedOutput reports what a seed run inserted.
type SeedOutput struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Spots     int64  `json:"-"`
	Landmarks int64  `json:"-"`
	Images    int64  `json:"-"`
	Reviews   int64  `json:"-"`
}

// AdminUsecase defines the moderation and seeding operations. Every method applies the admin gate first.
type AdminUsecase interface {
	ListBusinesses(ctx context.Context, session *entity.Session) ([]*BusinessView, error)
	DeleteReview(ctx context.Context, session *entity.Session, id int64) error
	Seed(ctx context.Context, session *entity.Session) (*SeedOutput, error)
}
