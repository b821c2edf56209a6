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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthHandler serves account endpoints.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// AssignAdmin promotes the caller to admin when the admin policy allows it.
func (h *AuthHandler) AssignAdmin(c echo.Context) error {
	if err := h.accountUC.AssignAdmin(c.Request().Context(), middleware.GetSession(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, successResponse{Success: true})
}
