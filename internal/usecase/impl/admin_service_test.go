package impl

import (
	"context"
	"testing"

	"localguide/internal/domain/constants"
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/domain/service"
	mockRepo "localguide/internal/mocks/repository"
	mockSvc "localguide/internal/mocks/service"
	"localguide/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	reviewRepo   *mockRepo.MockReviewRepository
	businessRepo *mockRepo.MockBusinessRepository
	publisher    *mockSvc.MockEventPublisher
}

func newAdminServiceForTest(t *testing.T) (usecase.AdminUsecase, adminMocks) {
	m := adminMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	srv := NewAdminService(AdminServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		ReviewRepo:   m.reviewRepo,
		BusinessRepo: m.businessRepo,
		Publisher:    m.publisher,
		Logger:       newDiscardLogger(),
	})

	return srv, m
}

func TestAdminService_Gate(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		wantErr error
	}{
		{name: "anonymous", session: nil, wantErr: domainerrors.ErrNotAuthenticated},
		{name: "regular user", session: userSession("u1"), wantErr: domainerrors.ErrAdminRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newAdminServiceForTest(t)
			ctx := context.Background()

			_, err := srv.ListBusinesses(ctx, tt.session)
			assert.ErrorIs(t, err, tt.wantErr)

			err = srv.DeleteReview(ctx, tt.session, 1)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = srv.Seed(ctx, tt.session)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdminService_ListBusinesses(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.businessRepo.EXPECT().FindAllNewestFirst(ctx).Return([]*entity.Business{
		{ID: "b2", Name: "Newer", Status: "pending"},
		{ID: "b1", Name: "Older", Status: "approved"},
	}, nil)

	views, err := srv.ListBusinesses(ctx, adminSession("a1"))
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "b2", views[0].ID)
	assert.Equal(t, "approved", views[1].Status)
}

func TestAdminService_DeleteReview(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.reviewRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)
	m.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.Type == constants.EventReviewRemoved && e.EntityID == "5" && e.ActorID == "a1" && e.EventID != ""
		})).
		Return(nil)

	assert.NoError(t, srv.DeleteReview(ctx, adminSession("a1"), 5))
}

func TestAdminService_DeleteReview_PublishFailureIsNotSurfaced(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.reviewRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)
	m.publisher.EXPECT().PublishModerationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	assert.NoError(t, srv.DeleteReview(ctx, adminSession("a1"), 5))
}

func TestAdminService_DeleteReview_NotFound(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.reviewRepo.EXPECT().Delete(ctx, int64(404)).Return(repository.ErrReviewNotFound)

	err := srv.DeleteReview(ctx, adminSession("a1"), 404)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestAdminService_Seed_NoUsers(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().List(ctx).Return([]*entity.User{}, nil)

	_, err := srv.Seed(ctx, adminSession("a1"))
	assert.ErrorIs(t, err, domainerrors.ErrNoUsers)
}

func TestAdminService_Seed(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	users := []*entity.User{{ID: "u1"}, {ID: "u2"}}
	catalog := sampleCatalog()

	spotRepo := mockRepo.NewMockSpotRepository(t)
	landmarkRepo := mockRepo.NewMockLandmarkRepository(t)
	imageRepo := mockRepo.NewMockImageRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSpotRepository().Return(spotRepo)
	factory.EXPECT().NewLandmarkRepository().Return(landmarkRepo)
	factory.EXPECT().NewImageRepository().Return(imageRepo)
	factory.EXPECT().NewReviewRepository().Return(reviewRepo)

	m.userRepo.EXPECT().List(ctx).Return(users, nil)
	m.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	spotRepo.EXPECT().CreateIfMissing(ctx, catalog.spots).Return(int64(len(catalog.spots)), nil)
	landmarkRepo.EXPECT().CreateIfMissing(ctx, catalog.landmarks).Return(int64(len(catalog.landmarks)), nil)
	imageRepo.EXPECT().CreateBatch(ctx, catalog.images).Return(int64(len(catalog.images)), nil)
	reviewRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(reviews []*entity.Review) bool {
			return len(reviews) == len(catalog.reviews) && reviews[0].UserID == "u1" && reviews[1].UserID == "u2"
		})).
		Return(int64(len(catalog.reviews)), nil)
	m.publisher.EXPECT().PublishModerationEvent(ctx, mock.MatchedBy(func(e *service.ModerationEvent) bool {
		return e.Type == constants.EventCatalogSeeded && e.Attributes["spots"] == "3"
	})).Return(nil)

	out, err := srv.Seed(ctx, adminSession("a1"))
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "Seeded 3 spots, 3 landmarks, 6 reviews", out.Message)
}

func TestAdminService_Seed_AlreadySeededSkipsReviews(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	spotRepo := mockRepo.NewMockSpotRepository(t)
	landmarkRepo := mockRepo.NewMockLandmarkRepository(t)
	imageRepo := mockRepo.NewMockImageRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSpotRepository().Return(spotRepo)
	factory.EXPECT().NewLandmarkRepository().Return(landmarkRepo)
	factory.EXPECT().NewImageRepository().Return(imageRepo)

	m.userRepo.EXPECT().List(ctx).Return([]*entity.User{{ID: "u1"}}, nil)
	m.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	spotRepo.EXPECT().CreateIfMissing(ctx, mock.Anything).Return(int64(0), nil)
	landmarkRepo.EXPECT().CreateIfMissing(ctx, mock.Anything).Return(int64(0), nil)
	imageRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(int64(0), nil)
	m.publisher.EXPECT().PublishModerationEvent(ctx, mock.Anything).Return(nil)

	out, err := srv.Seed(ctx, adminSession("a1"))
	require.NoError(t, err)
	assert.Equal(t, "Seeded 0 spots, 0 landmarks, 0 reviews", out.Message)
}

func TestAdminService_Seed_TransactionError(t *testing.T) {
	srv, m := newAdminServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().List(ctx).Return([]*entity.User{{ID: "u1"}}, nil)
	m.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("deadlock"))

	out, err := srv.Seed(ctx, adminSession("a1"))
	assert.Error(t, err)
	assert.Nil(t, out)
}
