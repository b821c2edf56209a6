package impl

import (
	"context"
	"strings"
	"testing"

	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	mockRepo "localguide/internal/mocks/repository"
	"localguide/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	reviewRepo   *mockRepo.MockReviewRepository
	spotRepo     *mockRepo.MockSpotRepository
	landmarkRepo *mockRepo.MockLandmarkRepository
}

func newReviewServiceForTest(t *testing.T) (usecase.ReviewUsecase, reviewMocks) {
	m := reviewMocks{
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		spotRepo:     mockRepo.NewMockSpotRepository(t),
		landmarkRepo: mockRepo.NewMockLandmarkRepository(t),
	}
	srv := NewReviewService(ReviewServiceParams{
		ReviewRepo:   m.reviewRepo,
		SpotRepo:     m.spotRepo,
		LandmarkRepo: m.landmarkRepo,
		Logger:       newDiscardLogger(),
	})

	return srv, m
}

func TestReviewService_DeleteReview(t *testing.T) {
	tests := []struct {
		name      string
		session   *entity.Session
		setupMock func(m reviewMocks)
		wantErr   error
	}{
		{
			name:    "anonymous caller",
			session: nil,
			wantErr: domainerrors.ErrNotAuthenticated,
		},
		{
			name:    "owner deletes",
			session: userSession("u1"),
			setupMock: func(m reviewMocks) {
				m.reviewRepo.EXPECT().DeleteOwned(mock.Anything, int64(10), "u1").Return(nil)
			},
		},
		{
			name:    "non-owner sees not found",
			session: userSession("u2"),
			setupMock: func(m reviewMocks) {
				m.reviewRepo.EXPECT().DeleteOwned(mock.Anything, int64(10), "u2").Return(repository.ErrReviewNotFound)
			},
			wantErr: domainerrors.ErrReviewNotFound,
		},
		{
			name:    "admin still only deletes own reviews here",
			session: adminSession("a1"),
			setupMock: func(m reviewMocks) {
				m.reviewRepo.EXPECT().DeleteOwned(mock.Anything, int64(10), "a1").Return(repository.ErrReviewNotFound)
			},
			wantErr: domainerrors.ErrReviewNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newReviewServiceForTest(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			err := srv.DeleteReview(context.Background(), tt.session, 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_DeleteReview_DatabaseError(t *testing.T) {
	srv, m := newReviewServiceForTest(t)
	m.reviewRepo.EXPECT().DeleteOwned(mock.Anything, int64(1), "u1").Return(errors.New("boom"))

	err := srv.DeleteReview(context.Background(), userSession("u1"), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_CreateReview(t *testing.T) {
	srv, m := newReviewServiceForTest(t)
	ctx := context.Background()

	m.landmarkRepo.EXPECT().FindByID(ctx, "tower").Return(&entity.Landmark{}, nil)
	m.reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.UserID == "u1" && r.EntityType == entity.EntityTypeLandmark && r.Rating == 4
		})).
		RunAndReturn(func(_ context.Context, r *entity.Review) error {
			r.ID = 99

			return nil
		})

	view, err := srv.CreateReview(ctx, userSession("u1"), usecase.CreateReviewInput{
		EntityType: "landmark",
		EntityID:   "tower",
		Rating:     4,
		Comment:    "Lovely view",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(99), view.ID)
	assert.Equal(t, "User u1", view.UserName)
	assert.Equal(t, "landmark", view.EntityType)
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		input   usecase.CreateReviewInput
		wantErr error
	}{
		{
			name:    "anonymous",
			input:   usecase.CreateReviewInput{EntityType: "spot", EntityID: "s", Rating: 3},
			wantErr: domainerrors.ErrNotAuthenticated,
		},
		{
			name:    "missing entity",
			session: userSession("u1"),
			input:   usecase.CreateReviewInput{Rating: 3},
			wantErr: domainerrors.ErrMissingParams,
		},
		{
			name:    "unknown entity type",
			session: userSession("u1"),
			input:   usecase.CreateReviewInput{EntityType: "museum", EntityID: "m", Rating: 3},
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "rating out of range",
			session: userSession("u1"),
			input:   usecase.CreateReviewInput{EntityType: "spot", EntityID: "s", Rating: 6},
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "comment too long",
			session: userSession("u1"),
			input:   usecase.CreateReviewInput{EntityType: "spot", EntityID: "s", Rating: 5, Comment: strings.Repeat("x", 2001)},
			wantErr: domainerrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newReviewServiceForTest(t)

			_, err := srv.CreateReview(context.Background(), tt.session, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewService_CreateReview_EntityMissing(t *testing.T) {
	srv, m := newReviewServiceForTest(t)
	ctx := context.Background()

	m.spotRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrSpotNotFound)

	_, err := srv.CreateReview(ctx, userSession("u1"), usecase.CreateReviewInput{EntityType: "spot", EntityID: "gone", Rating: 2})
	assert.ErrorIs(t, err, domainerrors.ErrSpotNotFound)
}

func TestReviewService_ListReviews(t *testing.T) {
	srv, m := newReviewServiceForTest(t)
	ctx := context.Background()

	m.reviewRepo.EXPECT().FindByEntity(ctx, entity.EntityTypeSpot, "s1").Return([]*entity.Review{
		{ID: 2, UserID: "u2", UserName: "Bo", EntityType: entity.EntityTypeSpot, EntityID: "s1", Rating: 5},
		{ID: 1, UserID: "u1", EntityType: entity.EntityTypeSpot, EntityID: "s1", Rating: 3},
	}, nil)

	views, err := srv.ListReviews(ctx, "spot", "s1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].ID)
	assert.Equal(t, "Bo", views[0].UserName)
}

func TestReviewService_ListReviews_MissingParams(t *testing.T) {
	srv, _ := newReviewServiceForTest(t)

	_, err := srv.ListReviews(context.Background(), "spot", "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingParams)
}
