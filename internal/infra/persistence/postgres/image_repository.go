package postgres

import (
	"context"

	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const imageOrder = "order_index ASC, id ASC"

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a GORM-backed repository.ImageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

// FindByEntity returns the images of one entity ordered by order index, then ID.
func (repo *imageRepository) FindByEntity(ctx context.Context, entityType entity.EntityType, entityID string) ([]*entity.Image, error) {
	var imageMs []*model.ImageModel
	err := repo.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID).
		Order(imageOrder).
		Find(&imageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find images by entity")
	}

	return toImagesDomain(imageMs), nil
}

// FindByEntities returns the images of many entities in a single query.
func (repo *imageRepository) FindByEntities(ctx context.Context, entityType entity.EntityType, entityIDs []string) ([]*entity.Image, error) {
	if len(entityIDs) == 0 {
		return []*entity.Image{}, nil
	}

	var imageMs []*model.ImageModel
	err := repo.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id IN ?", string(entityType), entityIDs).
		Order(imageOrder).
		Find(&imageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find images by entities")
	}

	return toImagesDomain(imageMs), nil
}

// CreateBatch inserts images for entities that have no images stored yet.
func (repo *imageRepository) CreateBatch(ctx context.Context, images []*entity.Image) (int64, error) {
	if len(images) == 0 {
		return 0, nil
	}

	entityIDs := make([]string, 0, len(images))
	for _, img := range images {
		entityIDs = append(entityIDs, img.EntityID)
	}

	var existing []*model.ImageModel
	err := repo.db.WithContext(ctx).
		Distinct("entity_type", "entity_id").
		Where("entity_id IN ?", entityIDs).
		Find(&existing).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to look up existing images")
	}

	stored := make(map[string]struct{}, len(existing))
	for _, imageM := range existing {
		stored[imageM.EntityType+"/"+imageM.EntityID] = struct{}{}
	}

	imageMs := make([]*model.ImageModel, 0, len(images))
	for _, img := range images {
		if _, ok := stored[string(img.EntityType)+"/"+img.EntityID]; ok {
			continue
		}
		imageMs = append(imageMs, fromImageDomain(img))
	}
	if len(imageMs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Create(&imageMs)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert images")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toImagesDomain(data []*model.ImageModel) []*entity.Image {
	images := make([]*entity.Image, 0, len(data))
	for _, imageM := range data {
		images = append(images, toImageDomain(imageM))
	}

	return images
}

func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:         data.ID,
		EntityType: entity.EntityType(data.EntityType),
		EntityID:   data.EntityID,
		URL:        data.URL,
		IsPrimary:  data.IsPrimary,
		OrderIndex: data.OrderIndex,
		CreatedAt:  data.CreatedAt,
	}
}

func fromImageDomain(data *entity.Image) *model.ImageModel {
	if data == nil {
		return nil
	}

	return &model.ImageModel{
		ID:         data.ID,
		EntityType: string(data.EntityType),
		EntityID:   data.EntityID,
		URL:        data.URL,
		IsPrimary:  data.IsPrimary,
		OrderIndex: data.OrderIndex,
	}
}
