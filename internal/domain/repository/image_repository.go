package repository

import (
	"context"

	"localguide/internal/domain/entity"
)

// ImageRepository defines the persistence operations for entity images.
type ImageRepository interface {
	// FindByEntity returns the images of one entity ordered by order index, then ID.
	FindByEntity(ctx context.Context, entityType entity.EntityType, entityID string) ([]*entity.Image, error)

	// FindByEntities returns the images of many entities of the same type in a single query,
	// ordered by order index, then ID.
	FindByEntities(ctx context.Context, entityType entity.EntityType, entityIDs []string) ([]*entity.Image, error)

	// CreateBatch inserts images, skipping entities that already have images stored.
	CreateBatch(ctx context.Context, images []*entity.Image) (int64, error)
}
