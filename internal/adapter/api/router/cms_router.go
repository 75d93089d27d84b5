package router

import (
	"rackline/internal/adapter/api/handler"
	"rackline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCMSRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	cmsHandler := handler.GetCMSHandler()

	admin := e.Group("/v1/cms")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/upload", cmsHandler.Upload)
	admin.POST("/redirects/import", cmsHandler.ImportRedirects)
}
