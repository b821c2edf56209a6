package repository

import (
	"context"

	"localguide/internal/domain/entity"
	"localguide/internal/errors"
)

// ErrReviewNotFound is returned when a review lookup or filtered delete matches no row.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	// Create persists a new review and fills its generated ID and timestamp.
	Create(ctx context.Context, review *entity.Review) error

	// FindByEntity returns the reviews of one entity, newest first.
	FindByEntity(ctx context.Context, entityType entity.EntityType, entityID string) ([]*entity.Review, error)

	// DeleteOwned removes the review only when it belongs to userID.
	// Existence and ownership are checked by the same statement, so a review owned
	// by someone else is indistinguishable from a missing one: both yield ErrReviewNotFound.
	DeleteOwned(ctx context.Context, id int64, userID string) error

	// Delete removes a review regardless of its owner. Returns ErrReviewNotFound when no row matches.
	Delete(ctx context.Context, id int64) error

	// CreateBatch inserts reviews and reports how many were inserted.
	CreateBatch(ctx context.Context, reviews []*entity.Review) (int64, error)
}
