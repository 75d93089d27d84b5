package router

import (
	"rackline/internal/adapter/api/handler"
	"rackline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	e.GET("/v1/products/paginated", productHandler.ListProducts)
	e.GET("/v1/products/:id", productHandler.GetProduct)

	admin := e.Group("/v1/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", productHandler.CreateProduct)
	admin.PATCH("/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
	admin.POST("/bulk", productHandler.BulkUpload)
	admin.POST("/refresh", productHandler.RefreshCache)
}
