package handler

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/middleware"
	"ruya/internal/cart"
	"ruya/internal/usecase"
	"ruya/pkg/errors"
	"ruya/pkg/response"
	"ruya/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
	cartManager  *cart.Manager
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, cartManager *cart.Manager) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		cartManager:  cartManager,
	}
}

type checkoutRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Checkout creates an order from the current session cart and clears the
// cart on success.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sessionID, ok := c.Get(middleware.SessionContextKey).(string)
	if !ok || sessionID == "" {
		return response.Error(c, errors.Internal("Cart session missing", nil))
	}
	store := h.cartManager.ForSession(sessionID)

	order, err := h.orderUseCase.Checkout(c.Request().Context(), usecase.CustomerInfo{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}, store.Items())
	if err != nil {
		return response.Error(c, err)
	}

	store.Clear()

	return response.Created(c, map[string]interface{}{
		"order_id": order.ID,
		"message":  "Order created successfully",
	})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrderByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.orderUseCase.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Order status updated successfully",
	})
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.orderUseCase.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Order deleted successfully",
	})
}
