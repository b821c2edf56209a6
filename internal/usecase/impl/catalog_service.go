// Package impl contains the implementation of the application's business logic.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"

	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/domain/service"
	"localguide/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	spotRepo      repository.SpotRepository
	landmarkRepo  repository.LandmarkRepository
	imageRepo     repository.ImageRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	SpotRepo      repository.SpotRepository
	LandmarkRepo  repository.LandmarkRepository
	ImageRepo     repository.ImageRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		spotRepo:      params.SpotRepo,
		landmarkRepo:  params.LandmarkRepo,
		imageRepo:     params.ImageRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSpots returns every spot with resolved images, optionally ordered by distance.
func (srv *catalogService) ListSpots(ctx context.Context, near *usecase.GeoPoint) ([]*usecase.SpotView, error) {
	if near != nil && !validCoordinates(near.Latitude, near.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	spots, err := srv.spotRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spots")
	}

	ids := make([]string, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}
	images, err := srv.imageRepo.FindByEntities(ctx, entity.EntityTypeSpot, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spot images")
	}
	byEntity := groupImagesByEntity(images)

	logger := srv.log(ctx)
	views := make([]*usecase.SpotView, 0, len(spots))
	for _, spot := range spots {
		views = append(views, toSpotView(logger, spot, byEntity[spot.ID]))
	}

	if near != nil {
		sortByDistance(views, *near)
	}

	return views, nil
}

// GetSpot returns a single spot view.
func (srv *catalogService) GetSpot(ctx context.Context, id string) (*usecase.SpotView, error) {
	spot, err := srv.spotRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpotNotFound) {
			return nil, domainerrors.ErrSpotNotFound
		}

		return nil, errors.Wrap(err, "failed to find spot")
	}

	images, err := srv.imageRepo.FindByEntity(ctx, entity.EntityTypeSpot, spot.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spot images")
	}

	return toSpotView(srv.log(ctx), spot, images), nil
}

// ListLandmarks returns every landmark with resolved images.
func (srv *catalogService) ListLandmarks(ctx context.Context) ([]*usecase.LandmarkView, error) {
	landmarks, err := srv.landmarkRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list landmarks")
	}

	ids := make([]string, 0, len(landmarks))
	for _, landmark := range landmarks {
		ids = append(ids, landmark.ID)
	}
	images, err := srv.imageRepo.FindByEntities(ctx, entity.EntityTypeLandmark, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load landmark images")
	}
	byEntity := groupImagesByEntity(images)

	logger := srv.log(ctx)
	views := make([]*usecase.LandmarkView, 0, len(landmarks))
	for _, landmark := range landmarks {
		views = append(views, toLandmarkView(logger, landmark, byEntity[landmark.ID]))
	}

	return views, nil
}

// GetLandmark returns a single landmark view.
func (srv *catalogService) GetLandmark(ctx context.Context, id string) (*usecase.LandmarkView, error) {
	landmark, err := srv.findLandmark(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := srv.imageRepo.FindByEntity(ctx, entity.EntityTypeLandmark, landmark.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load landmark images")
	}

	return toLandmarkView(srv.log(ctx), landmark, images), nil
}

// LandmarkQRCode renders the share QR code of an existing landmark.
func (srv *catalogService) LandmarkQRCode(ctx context.Context, id string) ([]byte, error) {
	landmark, err := srv.findLandmark(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateLandmarkQR(landmark.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate landmark QR code")
	}

	return png, nil
}

func (srv *catalogService) findLandmark(ctx context.Context, id string) (*entity.Landmark, error) {
	landmark, err := srv.landmarkRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLandmarkNotFound) {
			return nil, domainerrors.ErrLandmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find landmark")
	}

	return landmark, nil
}

func validCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// sortByDistance fills DistanceMeters and orders the views nearest first.
// Spots without coordinates keep their relative order at the end.
func sortByDistance(views []*usecase.SpotView, from usecase.GeoPoint) {
	origin := orb.Point{from.Longitude, from.Latitude}
	for _, view := range views {
		if view.Latitude == nil || view.Longitude == nil {
			continue
		}
		distance := geo.Distance(origin, orb.Point{*view.Longitude, *view.Latitude})
		view.DistanceMeters = &distance
	}

	slices.SortStableFunc(views, func(a, b *usecase.SpotView) int {
		switch {
		case a.DistanceMeters == nil && b.DistanceMeters == nil:
			return 0
		case a.DistanceMeters == nil:
			return 1
		case b.DistanceMeters == nil:
			return -1
		default:
			return cmp.Compare(*a.DistanceMeters, *b.DistanceMeters)
		}
	})
}
