package postgres

import (
	"context"

	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type spotRepository struct {
	db *gorm.DB
}

// NewSpotRepository creates a GORM-backed repository.SpotRepository.
func NewSpotRepository(db *gorm.DB) repository.SpotRepository {
	return &spotRepository{db: db}
}

// FindAll returns every spot ordered by name.
func (repo *spotRepository) FindAll(ctx context.Context) ([]*entity.Spot, error) {
	var spotMs []*model.SpotModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&spotMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list spots")
	}

	spots := make([]*entity.Spot, 0, len(spotMs))
	for _, spotM := range spotMs {
		spots = append(spots, toSpotDomain(spotM))
	}

	return spots, nil
}

// FindByID retrieves a spot by its ID.
func (repo *spotRepository) FindByID(ctx context.Context, id string) (*entity.Spot, error) {
	var spotM model.SpotModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&spotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpotNotFound
		}

		return nil, errors.Wrap(err, "failed to find spot by id")
	}

	return toSpotDomain(&spotM), nil
}

// CreateIfMissing inserts the spots whose IDs are not stored yet.
func (repo *spotRepository) CreateIfMissing(ctx context.Context, spots []*entity.Spot) (int64, error) {
	if len(spots) == 0 {
		return 0, nil
	}

	spotMs := make([]*model.SpotModel, 0, len(spots))
	for _, spot := range spots {
		spotMs = append(spotMs, fromSpotDomain(spot))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&spotMs)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert spots")
	}

	return result.RowsAffected, nil
}
