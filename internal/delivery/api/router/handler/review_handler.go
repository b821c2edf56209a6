package handler

import (
	"log/slog"
	"net/http"

	"localguide/internal/delivery/api/response"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves review reads and writes.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for writing a review
type CreateReviewRequest struct {
	EntityType string `json:"entityType" validate:"required,oneof=spot landmark"`
	EntityID   string `json:"entityId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"max=2000"`
}

// ListReviews returns the reviews of one entity, newest first.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), c.QueryParam("entityType"), c.QueryParam("entityId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// CreateReview writes a review as the session's user.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), session, usecase.CreateReviewInput{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// DeleteReview removes a review owned by the session's user.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), session, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, successResponse{Success: true})
}

