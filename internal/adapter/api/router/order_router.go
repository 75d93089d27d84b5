package router

import (
	"rackline/internal/adapter/api/handler"
	"rackline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	// Customers list their own orders with any valid token.
	e.GET("/v1/orders/my-orders", orderHandler.MyOrders, authMiddleware.Authenticate)

	admin := e.Group("/v1/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", orderHandler.ListOrders)
	admin.POST("", orderHandler.CreateOrder)
	admin.PATCH("/:id", orderHandler.UpdateOrder)
	admin.POST("/:id/sync-airtable", orderHandler.SyncAirtable)
	admin.POST("/:id/sync-xero", orderHandler.SyncXero)
}
