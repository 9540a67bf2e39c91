package router

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/handler"
	"ruya/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/featured", productHandler.FeaturedProducts)
	products.GET("/bestsellers", productHandler.Bestsellers)
	products.GET("/:id", productHandler.GetProduct)

	e.GET("/v1/categories", productHandler.Categories)
}

func SetupAdminProductRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	admin := e.Group("/v1/admin/products")
	admin.Use(adminMiddleware.RequireAdmin)
	admin.GET("", productHandler.ListProducts)
	admin.GET("/:id", productHandler.GetProduct)
	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}
