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

type landmarkRepository struct {
	db *gorm.DB
}

// NewLandmarkRepository creates a GORM-backed repository.LandmarkRepository.
func NewLandmarkRepository(db *gorm.DB) repository.LandmarkRepository {
	return &landmarkRepository{db: db}
}

// FindAll returns every landmark ordered by name.
func (repo *landmarkRepository) FindAll(ctx context.Context) ([]*entity.Landmark, error) {
	var landmarkMs []*model.LandmarkModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&landmarkMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list landmarks")
	}

	landmarks := make([]*entity.Landmark, 0, len(landmarkMs))
	for _, landmarkM := range landmarkMs {
		landmarks = append(landmarks, toLandmarkDomain(landmarkM))
	}

	return landmarks, nil
}

// FindByID retrieves a landmark by its ID.
func (repo *landmarkRepository) FindByID(ctx context.Context, id string) (*entity.Landmark, error) {
	var landmarkM model.LandmarkModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&landmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLandmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find landmark by id")
	}

	return toLandmarkDomain(&landmarkM), nil
}

// CreateIfMissing inserts the landmarks whose IDs are not stored yet.
func (repo *landmarkRepository) CreateIfMissing(ctx context.Context, landmarks []*entity.Landmark) (int64, error) {
	if len(landmarks) == 0 {
		return 0, nil
	}

	landmarkMs := make([]*model.LandmarkModel, 0, len(landmarks))
	for _, landmark := range landmarks {
		landmarkMs = append(landmarkMs, fromLandmarkDomain(landmark))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&landmarkMs)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert landmarks")
	}

	return result.RowsAffected, nil
}
