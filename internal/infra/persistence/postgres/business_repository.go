package postgres

import (
	"context"

	"localguide/internal/domain/entity"
	"localguide/internal/domain/repository"
	"localguide/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a GORM-backed repository.BusinessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindAllNewestFirst returns every business ordered by creation time, newest first.
func (repo *businessRepository) FindAllNewestFirst(ctx context.Context) ([]*entity.Business, error) {
	var businessMs []*model.BusinessModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&businessMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessMs))
	for _, businessM := range businessMs {
		businesses = append(businesses, &entity.Business{
			ID:           businessM.ID,
			Name:         businessM.Name,
			Category:     businessM.Category,
			Address:      businessM.Address,
			ContactEmail: businessM.ContactEmail,
			Phone:        businessM.Phone,
			OwnerID:      businessM.OwnerID,
			Status:       businessM.Status,
			CreatedAt:    businessM.CreatedAt,
		})
	}

	return businesses, nil
}
