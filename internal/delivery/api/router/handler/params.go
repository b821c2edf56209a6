package handler

import (
	"strconv"

	"localguide/internal/delivery/api/middleware"
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/usecase"

	"github.com/labstack/echo/v4"
)

// successResponse is the body of mutations that return no resource.
type successResponse struct {
	Success bool `json:"success"`
}

// parseID reads a positive int64 path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID
	}

	return id, nil
}

// sessionOf returns the caller's session or ErrNotAuthenticated.
func sessionOf(c echo.Context) (*entity.Session, error) {
	session := middleware.GetSession(c)
	if err := usecase.RequireSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

// adminSessionOf returns the caller's session when it passes the admin gate.
func adminSessionOf(c echo.Context) (*entity.Session, error) {
	session := middleware.GetSession(c)
	if err := usecase.RequireAdmin(session); err != nil {
		return nil, err
	}

	return session, nil
}
