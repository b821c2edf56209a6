package impl

import (
	"context"
	"testing"

	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/service"
	mockRepo "localguide/internal/mocks/repository"
	mockSvc "localguide/internal/mocks/service"
	"localguide/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageServiceForTest(t *testing.T) (usecase.ImageUsecase, *mockRepo.MockImageRepository, *mockSvc.MockImageStore) {
	imageRepo := mockRepo.NewMockImageRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	srv := NewImageService(ImageServiceParams{
		ImageRepo:  imageRepo,
		ImageStore: imageStore,
		Logger:     newDiscardLogger(),
	})

	return srv, imageRepo, imageStore
}

func TestImageService_ListImages(t *testing.T) {
	srv, imageRepo, _ := newImageServiceForTest(t)
	ctx := context.Background()

	imageRepo.EXPECT().FindByEntity(ctx, entity.EntityTypeSpot, "s1").Return([]*entity.Image{
		{ID: 1, EntityType: entity.EntityTypeSpot, EntityID: "s1", URL: "/p.jpg", IsPrimary: true},
		{ID: 2, EntityType: entity.EntityTypeSpot, EntityID: "s1", URL: "/a.jpg", OrderIndex: 1},
	}, nil)

	views, err := srv.ListImages(ctx, userSession("u1"), "spot", "s1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].IsPrimary)
	assert.Equal(t, "spot", views[1].EntityType)
}

func TestImageService_ListImages_Errors(t *testing.T) {
	srv, _, _ := newImageServiceForTest(t)
	ctx := context.Background()

	_, err := srv.ListImages(ctx, nil, "spot", "s1")
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	_, err = srv.ListImages(ctx, nil, "", "")
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated, "auth is checked before parameters")

	_, err = srv.ListImages(ctx, userSession("u1"), "", "s1")
	assert.ErrorIs(t, err, domainerrors.ErrMissingParams)
}

func TestImageService_ServeImage(t *testing.T) {
	srv, _, imageStore := newImageServiceForTest(t)
	ctx := context.Background()

	file := &service.ImageFile{Key: "spots/a.jpg", Data: []byte("jpeg"), ContentType: "image/jpeg"}
	imageStore.EXPECT().Resolve("spots/a.jpg").Return("spots/a.jpg", nil)
	imageStore.EXPECT().Read(ctx, "spots/a.jpg").Return(file, nil)

	got, err := srv.ServeImage(ctx, "spots/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, file, got)
}

func TestImageService_ServeImage_RejectsTraversalWithoutReading(t *testing.T) {
	srv, _, imageStore := newImageServiceForTest(t)
	ctx := context.Background()

	imageStore.EXPECT().Resolve("../../etc/passwd").Return("", domainerrors.ErrInvalidPath)

	_, err := srv.ServeImage(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPath)
	imageStore.AssertNotCalled(t, "Read")
}
