package usecase

import (
	"context"
	"time"

	"localguide/internal/domain/entity"
)

// CreateReviewInput defines the data required to write a review.
type CreateReviewInput struct {
	EntityType string
	EntityID   string
	Rating     int
	Comment    string
}

// ReviewView is the public shape of a review.
type ReviewView struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewUsecase defines review reads and writes.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, entityType, entityID string) ([]*ReviewView, error)
	CreateReview(ctx context.Context, session *entity.Session, input CreateReviewInput) (*ReviewView, error)

	// DeleteReview removes a review owned by the session's user. A review owned by someone
	// else is reported exactly like a missing one.
	DeleteReview(ctx context.Context, session *entity.Session, id int64) error
}
