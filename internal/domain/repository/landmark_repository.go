package repository

import (
	"context"

	"localguide/internal/domain/entity"
	"localguide/internal/errors"
)

// ErrLandmarkNotFound is returned when a landmark lookup matches no row.
var ErrLandmarkNotFound = errors.New("landmark not found")

// LandmarkRepository defines read and seed operations for landmarks.
type LandmarkRepository interface {
	// FindAll returns every landmark ordered by name.
	FindAll(ctx context.Context) ([]*entity.Landmark, error)

	// FindByID retrieves a landmark, returning ErrLandmarkNotFound when it does not exist.
	FindByID(ctx context.Context, id string) (*entity.Landmark, error)

	// CreateIfMissing inserts landmarks whose IDs are not stored yet and reports how many were inserted.
	CreateIfMissing(ctx context.Context, landmarks []*entity.Landmark) (int64, error)
}
