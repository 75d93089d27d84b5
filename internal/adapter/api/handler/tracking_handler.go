package handler

import (
	"rackline/internal/usecase"
	"rackline/pkg/response"

	"github.com/labstack/echo/v4"
)

type TrackingHandler struct {
	trackingUseCase *usecase.TrackingUseCase
}

func NewTrackingHandler(trackingUseCase *usecase.TrackingUseCase) *TrackingHandler {
	return &TrackingHandler{trackingUseCase: trackingUseCase}
}

type trackRequest struct {
	Reference string `json:"reference" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// Track is unauthenticated: a reference+email pair either matches an
// order, matches a quote, or yields one generic not-found message.
func (h *TrackingHandler) Track(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.trackingUseCase.Track(c.Request().Context(), req.Reference, req.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
