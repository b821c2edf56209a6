package usecase

import (
	"context"
	"time"

	"localguide/internal/domain/entity"
	"localguide/internal/domain/service"
)

// ImageView is the public shape of an image row.
type ImageView struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	URL        string    `json:"url"`
	IsPrimary  bool      `json:"isPrimary"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ImageUsecase defines image listing and serving.
type ImageUsecase interface {
	// ListImages returns the image rows of one entity, ordered by order index. Requires a session.
	ListImages(ctx context.Context, session *entity.Session, entityType, entityID string) ([]*ImageView, error)

	// ServeImage validates rawPath against the image root and reads the file behind it.
	ServeImage(ctx context.Context, rawPath string) (*service.ImageFile, error)
}
