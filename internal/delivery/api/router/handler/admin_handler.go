package handler

import (
	"log/slog"
	"net/http"

	"localguide/internal/delivery/api/middleware"
	"localguide/internal/delivery/api/response"
	"localguide/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the admin-only endpoints.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListBusinesses returns every business, newest first.
func (h *AdminHandler) ListBusinesses(c echo.Context) error {
	businesses, err := h.adminUC.ListBusinesses(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, businesses)
}

// DeleteReview removes any review.
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	session, err := adminSessionOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteReview(c.Request().Context(), session, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, successResponse{Success: true})
}

// Seed loads the sample catalog.
func (h *AdminHandler) Seed(c echo.Context) error {
	output, err := h.adminUC.Seed(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
