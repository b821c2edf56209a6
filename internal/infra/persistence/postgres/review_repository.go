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

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a GORM-backed repository.ReviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review and fills its generated ID and timestamp.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("review author is unknown")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("invalid review")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindByEntity returns the reviews of one entity, newest first, with author names.
func (repo *reviewRepository) FindByEntity(ctx context.Context, entityType entity.EntityType, entityID string) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Joins("User").
		Where("reviews.entity_type = ? AND reviews.entity_id = ?", string(entityType), entityID).
		Order("reviews.created_at DESC, reviews.id DESC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by entity")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// DeleteOwned removes the review only when it belongs to userID, in a single statement.
func (repo *reviewRepository) DeleteOwned(ctx context.Context, id int64, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review regardless of its owner.
func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// CreateBatch inserts reviews and reports how many were inserted.
func (repo *reviewRepository) CreateBatch(ctx context.Context, reviews []*entity.Review) (int64, error) {
	if len(reviews) == 0 {
		return 0, nil
	}

	reviewMs := make([]*model.ReviewModel, 0, len(reviews))
	for _, review := range reviews {
		reviewMs = append(reviewMs, fromReviewDomain(review))
	}

	result := repo.db.WithContext(ctx).Create(&reviewMs)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert reviews")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:         data.ID,
		UserID:     data.UserID,
		EntityType: entity.EntityType(data.EntityType),
		EntityID:   data.EntityID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
	if data.User != nil {
		review.UserName = data.User.Name
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		UserID:     data.UserID,
		EntityType: string(data.EntityType),
		EntityID:   data.EntityID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}
