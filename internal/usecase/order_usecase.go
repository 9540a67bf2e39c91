package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ruya/internal/cart"
	"ruya/internal/domain/entity"
	"ruya/internal/domain/repository"
	"ruya/pkg/errors"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

type CustomerInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Checkout turns the session cart into a persisted order. The total is
// computed from the cart's price snapshots, not from client input.
func (uc *OrderUseCase) Checkout(ctx context.Context, customer CustomerInfo, items []cart.Item) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	orderItems := make([]entity.OrderItem, 0, len(items))
	total := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, errors.BadRequest("Invalid item quantity", nil)
		}
		orderItems = append(orderItems, entity.OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
		})
		total += item.Product.Price * float64(item.Quantity)
	}

	order := &entity.Order{
		ID:            uuid.NewString(),
		CustomerName:  customer.FirstName + " " + customer.LastName,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Address:       customer.Address,
		City:          customer.City,
		PostalCode:    customer.PostalCode,
		Country:       customer.Country,
		TotalAmount:   total,
		Status:        entity.OrderStatusPending,
		PaymentMethod: "Cash on Delivery",
		Items:         orderItems,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) GetOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, limit, offset int) ([]entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, limit, offset)
}

func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	if !entity.ValidOrderStatus(status) {
		return errors.BadRequest("Invalid order status", nil)
	}
	return uc.orderRepo.UpdateStatus(ctx, id, status)
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.orderRepo.Delete(ctx, id)
}
