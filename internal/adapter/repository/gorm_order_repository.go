package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ruya/internal/domain/entity"
	"ruya/internal/domain/repository"
	apperrors "ruya/pkg/errors"
)

type gormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &gormOrderRepository{db: db}
}

// Create writes the order and its line items in one transaction.
func (r *gormOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return apperrors.Internal("Failed to create order", err)
	}
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Order", err)
		}
		return nil, apperrors.Internal("Failed to get order", err)
	}
	return &order, nil
}

func (r *gormOrderRepository) List(ctx context.Context, limit, offset int) ([]entity.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("Failed to count orders", err)
	}

	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list orders", err)
	}
	return orders, total, nil
}

func (r *gormOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return apperrors.Internal("Failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Order", nil)
	}
	return nil
}

// Delete removes the order together with its line items.
func (r *gormOrderRepository) Delete(ctx context.Context, id string) error {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return apperrors.Internal("Failed to delete order", err)
	}
	if affected == 0 {
		return apperrors.NotFound("Order", nil)
	}
	return nil
}
