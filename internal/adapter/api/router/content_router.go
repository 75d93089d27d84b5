package router

import (
	"rackline/internal/adapter/api/handler"
	"rackline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupContentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contentHandler := handler.GetContentHandler()

	e.GET("/v1/content", contentHandler.GetContent)

	admin := e.Group("/v1/content")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/:section", contentHandler.UpdateSection)
}
