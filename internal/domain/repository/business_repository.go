package repository

import (
	"context"

	"localguide/internal/domain/entity"
)

// BusinessRepository defines read operations for submitted businesses.
type BusinessRepository interface {
	// FindAllNewestFirst returns every business ordered by creation time, newest first.
	FindAllNewestFirst(ctx context.Context) ([]*entity.Business, error)
}
