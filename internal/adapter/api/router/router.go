package router

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	SetupProductRouter(e)
	SetupCartRouter(e)
	SetupOrderRouter(e, adminMiddleware)
	SetupCountdownRouter(e, adminMiddleware)
	SetupAuthRouter(e)
	SetupAdminProductRouter(e, adminMiddleware)
	SetupUploadRouter(e, adminMiddleware)
	SetupHealthRouter(e)
}
