package router

import (
	"rackline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupContentRouter(e, authMiddleware, adminMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupCategoryRouter(e, authMiddleware, adminMiddleware)
	SetupBlogRouter(e, authMiddleware, adminMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupQuoteRouter(e, authMiddleware, adminMiddleware)
	SetupTrackingRouter(e)
	SetupCMSRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
