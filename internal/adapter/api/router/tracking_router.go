package router

import (
	"rackline/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// Tracking is deliberately unauthenticated: the reference+email pair is
// the only credential.
func SetupTrackingRouter(e *echo.Echo) {
	trackingHandler := handler.GetTrackingHandler()

	e.POST("/v1/orders/track", trackingHandler.Track)
	e.POST("/v1/quotes/track", trackingHandler.Track)
}
