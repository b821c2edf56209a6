package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"localguide/internal/delivery/api/middleware"
	"localguide/internal/delivery/api/response"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// immutableCacheControl lets clients cache served images for a year.
const immutableCacheControl = "public, max-age=31536000, immutable"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler lists image rows and serves image files.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// ListImages returns the image rows of one entity. Requires a session.
func (h *ImageHandler) ListImages(c echo.Context) error {
	images, err := h.imageUC.ListImages(
		c.Request().Context(),
		middleware.GetSession(c),
		c.QueryParam("entityType"),
		c.QueryParam("entityId"),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, images)
}

// ServeImage streams the file under the wildcard path.
// The wildcard may still be percent-encoded, so it is decoded once before validation.
func (h *ImageHandler) ServeImage(c echo.Context) error {
	rawPath, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidPath)
	}

	file, err := h.imageUC.ServeImage(c.Request().Context(), rawPath)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", immutableCacheControl)

	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
