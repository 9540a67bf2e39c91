package router

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/handler"
	"ruya/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	admin := e.Group("/v1/admin/upload")
	admin.Use(adminMiddleware.RequireAdmin)
	admin.POST("", uploadHandler.UploadImage)
}
