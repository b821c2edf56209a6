package impl

import (
	"context"
	"log/slog"

	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/domain/entity"
	"localguide/internal/domain/repository"
	"localguide/internal/domain/service"
	"localguide/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageService implements the ImageUsecase interface.
type imageService struct {
	imageRepo  repository.ImageRepository
	imageStore service.ImageStore
	logger     *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ImageRepo  repository.ImageRepository
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		imageRepo:  params.ImageRepo,
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListImages returns the image rows of one entity for a signed-in caller.
func (srv *imageService) ListImages(ctx context.Context, session *entity.Session, entityType, entityID string) ([]*usecase.ImageView, error) {
	if err := usecase.RequireSession(session); err != nil {
		return nil, err
	}
	kind, err := parseEntityRef(entityType, entityID)
	if err != nil {
		return nil, err
	}

	images, err := srv.imageRepo.FindByEntity(ctx, kind, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	views := make([]*usecase.ImageView, 0, len(images))
	for _, img := range images {
		views = append(views, toImageView(img))
	}

	return views, nil
}

// ServeImage resolves rawPath inside the image root and reads the file.
// Unsafe paths are rejected before the store is touched.
func (srv *imageService) ServeImage(ctx context.Context, rawPath string) (*service.ImageFile, error) {
	key, err := srv.imageStore.Resolve(rawPath)
	if err != nil {
		srv.log(ctx).Warn("Rejected image path", slog.String("path", rawPath))

		return nil, err
	}

	file, err := srv.imageStore.Read(ctx, key)
	if err != nil {
		return nil, err
	}

	return file, nil
}
