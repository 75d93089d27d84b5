package router

import (
	"rackline/internal/adapter/api/handler"
	"rackline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupQuoteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	quoteHandler := handler.GetQuoteHandler()

	// The request-a-quote form submits without an account.
	e.POST("/v1/quotes", quoteHandler.CreateQuote)

	admin := e.Group("/v1/quotes")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", quoteHandler.ListQuotes)
	admin.PATCH("/:id", quoteHandler.UpdateQuote)
}
