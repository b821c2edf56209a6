package repository

import (
	"context"

	"localguide/internal/domain/entity"
	"localguide/internal/errors"
)

// ErrSpotNotFound is returned when a spot lookup matches no row.
var ErrSpotNotFound = errors.New("spot not found")

// SpotRepository defines read and seed operations for spots.
type SpotRepository interface {
	// FindAll returns every spot ordered by name.
	FindAll(ctx context.Context) ([]*entity.Spot, error)

	// FindByID retrieves a spot, returning ErrSpotNotFound when it does not exist.
	FindByID(ctx context.Context, id string) (*entity.Spot, error)

	// CreateIfMissing inserts spots whose IDs are not stored yet and reports how many were inserted.
	CreateIfMissing(ctx context.Context, spots []*entity.Spot) (int64, error)
}
