package router

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/handler"
	"ruya/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(middleware.CartSession)
	orders.POST("", orderHandler.Checkout)

	admin := e.Group("/v1/admin/orders")
	admin.Use(adminMiddleware.RequireAdmin)
	admin.GET("", orderHandler.ListOrders)
	admin.GET("/:id", orderHandler.GetOrder)
	admin.PUT("/:id/status", orderHandler.UpdateOrderStatus)
	admin.DELETE("/:id", orderHandler.DeleteOrder)
}
