package repository

import (
	"context"

	"ruya/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	ListFeatured(ctx context.Context) ([]entity.Product, error)
	ListBestsellers(ctx context.Context) ([]entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
