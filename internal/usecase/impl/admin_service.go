package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/domain/constants"
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/domain/service"
	"localguide/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ReviewRepo   repository.ReviewRepository
	BusinessRepo repository.BusinessRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		reviewRepo:   params.ReviewRepo,
		businessRepo: params.BusinessRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBusinesses returns every submitted business, newest first.
func (srv *adminService) ListBusinesses(ctx context.Context, session *entity.Session) ([]*usecase.BusinessView, error) {
	if err := usecase.RequireAdmin(session); err != nil {
		return nil, err
	}

	businesses, err := srv.businessRepo.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	views := make([]*usecase.BusinessView, 0, len(businesses))
	for _, business := range businesses {
		views = append(views, &usecase.BusinessView{
			ID:           business.ID,
			Name:         business.Name,
			Category:     business.Category,
			Address:      business.Address,
			ContactEmail: business.ContactEmail,
			Phone:        business.Phone,
			OwnerID:      business.OwnerID,
			Status:       business.Status,
			CreatedAt:    business.CreatedAt,
		})
	}

	return views, nil
}

// DeleteReview removes any review, regardless of its owner.
func (srv *adminService) DeleteReview(ctx context.Context, session *entity.Session, id int64) error {
	if err := usecase.RequireAdmin(session); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review removed by admin",
		slog.Int64("review_id", id),
		slog.String("admin_id", session.UserID),
	)
	srv.publish(ctx, session, constants.EventReviewRemoved, "review", strconv.FormatInt(id, 10), nil)

	return nil
}

// Seed inserts the sample catalog in one transaction. Rows that already exist are skipped,
// and sample reviews are only written when the run inserted at least one place.
func (srv *adminService) Seed(ctx context.Context, session *entity.Session) (*usecase.SeedOutput, error) {
	if err := usecase.RequireAdmin(session); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	if len(users) == 0 {
		return nil, domainerrors.ErrNoUsers
	}

	catalog := sampleCatalog()
	output := &usecase.SeedOutput{Success: true}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		if output.Spots, txErr = repoFactory.NewSpotRepository().CreateIfMissing(ctx, catalog.spots); txErr != nil {
			return errors.Wrap(txErr, "failed to seed spots")
		}
		if output.Landmarks, txErr = repoFactory.NewLandmarkRepository().CreateIfMissing(ctx, catalog.landmarks); txErr != nil {
			return errors.Wrap(txErr, "failed to seed landmarks")
		}
		if output.Images, txErr = repoFactory.NewImageRepository().CreateBatch(ctx, catalog.images); txErr != nil {
			return errors.Wrap(txErr, "failed to seed images")
		}

		if output.Spots+output.Landmarks == 0 {
			return nil
		}
		reviews := catalog.reviewsFor(users)
		if output.Reviews, txErr = repoFactory.NewReviewRepository().CreateBatch(ctx, reviews); txErr != nil {
			return errors.Wrap(txErr, "failed to seed reviews")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	output.Message = fmt.Sprintf("Seeded %d spots, %d landmarks, %d reviews", output.Spots, output.Landmarks, output.Reviews)
	srv.log(ctx).Info("Catalog seeded",
		slog.Int64("spots", output.Spots),
		slog.Int64("landmarks", output.Landmarks),
		slog.Int64("images", output.Images),
		slog.Int64("reviews", output.Reviews),
	)
	srv.publish(ctx, session, constants.EventCatalogSeeded, "", "", map[string]string{
		"spots":     strconv.FormatInt(output.Spots, 10),
		"landmarks": strconv.FormatInt(output.Landmarks, 10),
		"reviews":   strconv.FormatInt(output.Reviews, 10),
	})

	return output, nil
}

// publish emits a moderation event. Failures are logged and never fail the request.
func (srv *adminService) publish(ctx context.Context, session *entity.Session, eventType, entityType, entityID string, attributes map[string]string) {
	event := &service.ModerationEvent{
		RequestID:  deliverycontext.RequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		ActorID:    session.UserID,
		EntityType: entityType,
		EntityID:   entityID,
		Attributes: attributes,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish moderation event",
			slog.String("event_type", eventType),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
