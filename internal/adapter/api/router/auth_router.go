package router

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/admin/login", authHandler.Login)
	e.POST("/v1/admin/logout", authHandler.Logout)
}
