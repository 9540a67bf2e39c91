package router

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/handler"
	"ruya/internal/adapter/api/middleware"
)

func SetupCountdownRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	countdownHandler := handler.GetCountdownHandler()

	e.GET("/v1/countdown", countdownHandler.GetCountdown)

	admin := e.Group("/v1/admin/countdown")
	admin.Use(adminMiddleware.RequireAdmin)
	admin.PUT("", countdownHandler.UpdateCountdown)
}
