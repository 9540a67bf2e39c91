package entity

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;size:36"`
	CustomerName  string      `json:"customer_name" gorm:"size:200;not null"`
	Email         string      `json:"email" gorm:"size:200;not null"`
	Phone         string      `json:"phone" gorm:"size:50;not null"`
	Address       string      `json:"address" gorm:"size:500;not null"`
	City          string      `json:"city" gorm:"size:100"`
	PostalCode    string      `json:"postal_code" gorm:"size:20"`
	Country       string      `json:"country" gorm:"size:100"`
	TotalAmount   float64     `json:"total_amount" gorm:"not null"`
	Status        string      `json:"status" gorm:"size:20;default:pending"`
	PaymentMethod string      `json:"payment_method" gorm:"size:50"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem carries the product name and price as they were at checkout,
// so later product edits do not rewrite order history.
type OrderItem struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID     string  `json:"order_id" gorm:"size:36;index;not null"`
	ProductID   int64   `json:"product_id" gorm:"not null"`
	ProductName string  `json:"product_name" gorm:"size:200;not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ValidOrderStatus reports whether s is one of the known order states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
