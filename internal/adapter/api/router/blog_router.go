package router

import (
	"rackline/internal/adapter/api/handler"
	"rackline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupBlogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	blogHandler := handler.GetBlogHandler()

	e.GET("/v1/blog", blogHandler.ListPosts)
	e.GET("/v1/blog/:id", blogHandler.GetPost)

	admin := e.Group("/v1/blog")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", blogHandler.CreatePost)
	admin.PUT("/:id", blogHandler.UpdatePost)
	admin.DELETE("/:id", blogHandler.DeletePost)
}
