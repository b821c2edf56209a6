package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minReviewRating     = 1
	maxReviewRating     = 5
	maxReviewCommentLen = 2000
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo   repository.ReviewRepository
	spotRepo     repository.SpotRepository
	landmarkRepo repository.LandmarkRepository
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo   repository.ReviewRepository
	SpotRepo     repository.SpotRepository
	LandmarkRepo repository.LandmarkRepository
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   params.ReviewRepo,
		spotRepo:     params.SpotRepo,
		landmarkRepo: params.LandmarkRepo,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns the reviews of one entity, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, entityType, entityID string) ([]*usecase.ReviewView, error) {
	kind, err := parseEntityRef(entityType, entityID)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.FindByEntity(ctx, kind, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	views := make([]*usecase.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return views, nil
}

// CreateReview stores a review written by the session's user for an existing entity.
func (srv *reviewService) CreateReview(ctx context.Context, session *entity.Session, input usecase.CreateReviewInput) (*usecase.ReviewView, error) {
	if err := usecase.RequireSession(session); err != nil {
		return nil, err
	}
	kind, err := parseEntityRef(input.EntityType, input.EntityID)
	if err != nil {
		return nil, err
	}
	if input.Rating < minReviewRating || input.Rating > maxReviewRating {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(input.Comment) > maxReviewCommentLen {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("comment is too long")
	}

	if err := srv.ensureEntityExists(ctx, kind, input.EntityID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		UserID:     session.UserID,
		UserName:   session.Name,
		EntityType: kind,
		EntityID:   input.EntityID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.Int64("review_id", review.ID),
		slog.String("entity_type", kind.String()),
		slog.String("entity_id", input.EntityID),
	)

	return toReviewView(review), nil
}

// DeleteReview removes the caller's own review with a single filtered delete.
func (srv *reviewService) DeleteReview(ctx context.Context, session *entity.Session, id int64) error {
	if err := usecase.RequireSession(session); err != nil {
		return err
	}

	if err := srv.reviewRepo.DeleteOwned(ctx, id, session.UserID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted by owner", slog.Int64("review_id", id))

	return nil
}

func (srv *reviewService) ensureEntityExists(ctx context.Context, kind entity.EntityType, id string) error {
	switch kind {
	case entity.EntityTypeSpot:
		if _, err := srv.spotRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrSpotNotFound) {
				return domainerrors.ErrSpotNotFound
			}

			return errors.Wrap(err, "failed to find spot")
		}
	case entity.EntityTypeLandmark:
		if _, err := srv.landmarkRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrLandmarkNotFound) {
				return domainerrors.ErrLandmarkNotFound
			}

			return errors.Wrap(err, "failed to find landmark")
		}
	}

	return nil
}

// parseEntityRef validates an (entityType, entityId) query pair.
func parseEntityRef(entityType, entityID string) (entity.EntityType, error) {
	if entityType == "" || entityID == "" {
		return "", domainerrors.ErrMissingParams
	}
	kind := entity.EntityType(entityType)
	if !kind.IsValid() {
		return "", domainerrors.ErrInvalidInput.WrapMessage("unknown entity type")
	}

	return kind, nil
}
