package usecase

import (
	"context"
	"time"

	"ruya/internal/catalog"
	"ruya/internal/domain/entity"
	"ruya/internal/domain/repository"
	"ruya/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Featured    bool    `json:"featured"`
	Bestseller  bool    `json:"bestseller"`
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Featured:    input.Featured,
		Bestseller:  input.Bestseller,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Image = input.Image
	product.Category = input.Category
	product.Featured = input.Featured
	product.Bestseller = input.Bestseller
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts loads the full catalog and runs it through the filter/sort
// engine. Filtering happens in memory: the catalog is small and the engine's
// semantics (inclusive bands, locale-aware sort) stay in one place.
func (uc *ProductUseCase) ListProducts(ctx context.Context, criteria catalog.Criteria) ([]entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(products, criteria), nil
}

func (uc *ProductUseCase) FeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	return uc.productRepo.ListFeatured(ctx)
}

func (uc *ProductUseCase) Bestsellers(ctx context.Context) ([]entity.Product, error) {
	return uc.productRepo.ListBestsellers(ctx)
}

func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.productRepo.Categories(ctx)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.productRepo.Delete(ctx, id)
}
