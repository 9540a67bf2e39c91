package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ruya/internal/domain/entity"
	"ruya/internal/domain/repository"
	apperrors "ruya/pkg/errors"
)

type gormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) repository.ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return apperrors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product", err)
		}
		return nil, apperrors.Internal("Failed to get product", err)
	}
	return &product, nil
}

func (r *gormProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list products", err)
	}
	return products, nil
}

func (r *gormProductRepository) ListFeatured(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Where("featured = ?", true).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list featured products", err)
	}
	return products, nil
}

func (r *gormProductRepository) ListBestsellers(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Where("bestseller = ?", true).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list bestsellers", err)
	}
	return products, nil
}

func (r *gormProductRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list categories", err)
	}
	return categories, nil
}

func (r *gormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error; err != nil {
		return 0, apperrors.Internal("Failed to count products", err)
	}
	return count, nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "image", "category", "featured", "bestseller", "updated_at").
		Updates(product)
	if result.Error != nil {
		return apperrors.Internal("Failed to update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Product", nil)
	}
	return nil
}

func (r *gormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Internal("Failed to delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Product", nil)
	}
	return nil
}
