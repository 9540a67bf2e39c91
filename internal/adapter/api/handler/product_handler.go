package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ruya/internal/catalog"
	"ruya/internal/usecase"
	"ruya/pkg/errors"
	"ruya/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category" validate:"required"`
	Featured    bool    `json:"featured"`
	Bestseller  bool    `json:"bestseller"`
}

// ListProducts serves the public catalog. Query parameters map directly onto
// the filter/sort criteria; anything unrecognized degrades to "no filter".
func (h *ProductHandler) ListProducts(c echo.Context) error {
	criteria := catalog.Criteria{
		SearchTerm:     c.QueryParam("q"),
		Category:       c.QueryParam("category"),
		PriceRange:     c.QueryParam("price_range"),
		SortKey:        c.QueryParam("sort"),
		FeaturedOnly:   c.QueryParam("featured") == "true",
		BestsellerOnly: c.QueryParam("bestseller") == "true",
	}
	if criteria.Category == "" {
		criteria.Category = catalog.CategoryAll
	}

	products, err := h.productUseCase.ListProducts(c.Request().Context(), criteria)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) FeaturedProducts(c echo.Context) error {
	products, err := h.productUseCase.FeaturedProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) Bestsellers(c echo.Context) error {
	products, err := h.productUseCase.Bestsellers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.productUseCase.Categories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Featured:    req.Featured,
		Bestseller:  req.Bestseller,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Featured:    req.Featured,
		Bestseller:  req.Bestseller,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("Invalid product id", err)
	}
	return id, nil
}
