package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"localguide/internal/delivery/api/response"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves spots and landmarks.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListSpots returns every spot. With lat and lng query parameters the spots are ordered by distance.
func (h *CatalogHandler) ListSpots(c echo.Context) error {
	near, err := parseGeoPoint(c.QueryParam("lat"), c.QueryParam("lng"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	spots, err := h.catalogUC.ListSpots(c.Request().Context(), near)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, spots)
}

// GetSpot returns one spot.
func (h *CatalogHandler) GetSpot(c echo.Context) error {
	spot, err := h.catalogUC.GetSpot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, spot)
}

// ListLandmarks returns every landmark.
func (h *CatalogHandler) ListLandmarks(c echo.Context) error {
	landmarks, err := h.catalogUC.ListLandmarks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, landmarks)
}

// GetLandmark returns one landmark.
func (h *CatalogHandler) GetLandmark(c echo.Context) error {
	landmark, err := h.catalogUC.GetLandmark(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, landmark)
}

// GetLandmarkQR returns a PNG QR code linking to the landmark page.
func (h *CatalogHandler) GetLandmarkQR(c echo.Context) error {
	png, err := h.catalogUC.LandmarkQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseGeoPoint returns nil when neither coordinate is given.
// Range checks are left to the usecase.
func parseGeoPoint(rawLat, rawLng string) (*usecase.GeoPoint, error) {
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	lng, lngErr := strconv.ParseFloat(rawLng, 64)
	if latErr != nil || lngErr != nil {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	return &usecase.GeoPoint{Latitude: lat, Longitude: lng}, nil
}
