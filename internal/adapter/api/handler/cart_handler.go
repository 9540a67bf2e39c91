package handler

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/middleware"
	"ruya/internal/cart"
	"ruya/internal/usecase"
	"ruya/pkg/errors"
	"ruya/pkg/response"
)

type CartHandler struct {
	cartManager    *cart.Manager
	productUseCase *usecase.ProductUseCase
}

func NewCartHandler(cartManager *cart.Manager, productUseCase *usecase.ProductUseCase) *CartHandler {
	return &CartHandler{
		cartManager:    cartManager,
		productUseCase: productUseCase,
	}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"omitempty,gte=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type cartResponse struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func (h *CartHandler) store(c echo.Context) (*cart.Store, error) {
	sessionID, ok := c.Get(middleware.SessionContextKey).(string)
	if !ok || sessionID == "" {
		return nil, errors.Internal("Cart session missing", nil)
	}
	return h.cartManager.ForSession(sessionID), nil
}

func snapshot(store *cart.Store) cartResponse {
	items := store.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, snapshot(store))
}

// AddItem looks the product up fresh and stores a snapshot of it in the cart,
// so later catalog edits do not change the line's price.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.productUseCase.GetProductByID(c.Request().Context(), req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	store, err := h.store(c)
	if err != nil {
		return response.Error(c, err)
	}
	store.AddItem(*product, req.Quantity)

	return response.Success(c, snapshot(store))
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID, err := parseProductID(c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.store(c)
	if err != nil {
		return response.Error(c, err)
	}
	store.UpdateQuantity(productID, req.Quantity)

	return response.Success(c, snapshot(store))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := parseProductID(c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	store, err := h.store(c)
	if err != nil {
		return response.Error(c, err)
	}
	store.RemoveItem(productID)

	return response.Success(c, snapshot(store))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return response.Error(c, err)
	}
	store.Clear()

	return response.Success(c, snapshot(store))
}
