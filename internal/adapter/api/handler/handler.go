package handler

import (
	"ruya/internal/cart"
	"ruya/internal/usecase"
)

var (
	productHandler   *ProductHandler
	cartHandler      *CartHandler
	orderHandler     *OrderHandler
	countdownHandler *CountdownHandler
	authHandler      *AuthHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	countdownUseCase *usecase.CountdownUseCase,
	authUseCase *usecase.AuthUseCase,
	cartManager *cart.Manager,
) {
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartManager, productUseCase)
	orderHandler = NewOrderHandler(orderUseCase, cartManager)
	countdownHandler = NewCountdownHandler(countdownUseCase)
	authHandler = NewAuthHandler(authUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetCountdownHandler() *CountdownHandler {
	return countdownHandler
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}
