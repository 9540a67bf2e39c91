package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruya/internal/cart"
	"ruya/internal/catalog"
	"ruya/internal/domain/entity"
	apperrors "ruya/pkg/errors"
)

type fakeProductRepo struct {
	products []entity.Product
	nextID   int64
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("Product", nil)
}

func (f *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) ListFeatured(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListBestsellers(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.Bestseller {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range f.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			return nil
		}
	}
	return apperrors.NotFound("Product", nil)
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Product", nil)
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, apperrors.NotFound("Order", nil)
}

func (f *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]entity.Order, int64, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return []entity.Order{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
		return nil
	}
	return apperrors.NotFound("Order", nil)
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return apperrors.NotFound("Order", nil)
	}
	delete(f.orders, id)
	return nil
}

func TestProductUseCaseCreateSetsTimestamps(t *testing.T) {
	uc := NewProductUseCase(&fakeProductRepo{})

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Name: "Classic Aviator", Description: "Aviator", Price: 89.99, Category: "Sunglasses",
	})

	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestProductUseCaseRejectsNegativePrice(t *testing.T) {
	uc := NewProductUseCase(&fakeProductRepo{})

	_, err := uc.CreateProduct(context.Background(), ProductInput{Name: "Bad", Price: -1})

	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestProductUseCaseListAppliesCriteria(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, ProductInput{Name: "Cheap", Price: 30, Category: "men"})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, ProductInput{Name: "Pricey", Price: 120, Category: "women"})
	require.NoError(t, err)

	result, err := uc.ListProducts(ctx, catalog.Criteria{PriceRange: catalog.PriceBand0To50})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Cheap", result[0].Name)
}

func TestProductUseCaseUpdateMissing(t *testing.T) {
	uc := NewProductUseCase(&fakeProductRepo{})

	_, err := uc.UpdateProduct(context.Background(), 404, ProductInput{Name: "X", Price: 1})

	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func checkoutItems() []cart.Item {
	return []cart.Item{
		{Product: entity.Product{ID: 1, Name: "Classic Aviator", Price: 89.99}, Quantity: 2},
		{Product: entity.Product{ID: 2, Name: "Modern Round", Price: 129.99}, Quantity: 1},
	}
}

func TestCheckoutComputesTotalFromSnapshots(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo())

	order, err := uc.Checkout(context.Background(), CustomerInfo{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "+1", Address: "1 Main St",
	}, checkoutItems())

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.InDelta(t, 89.99*2+129.99, order.TotalAmount, 1e-9)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Classic Aviator", order.Items[0].ProductName)
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo())

	_, err := uc.Checkout(context.Background(), CustomerInfo{}, nil)

	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo())
	items := []cart.Item{{Product: entity.Product{ID: 1, Price: 10}, Quantity: 0}}

	_, err := uc.Checkout(context.Background(), CustomerInfo{}, items)

	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	order, err := uc.Checkout(ctx, CustomerInfo{FirstName: "J"}, checkoutItems())
	require.NoError(t, err)

	require.NoError(t, uc.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped))

	found, err := uc.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, found.Status)

	err = uc.UpdateOrderStatus(ctx, order.ID, "teleported")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestAuthLoginAndVerify(t *testing.T) {
	uc := NewAuthUseCase("hunter2", "test-secret", 3600)

	token, err := uc.Login("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, uc.VerifyToken(token))
}

func TestAuthLoginWrongPassword(t *testing.T) {
	uc := NewAuthUseCase("hunter2", "test-secret", 3600)

	_, err := uc.Login("letmein")

	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestAuthLoginUnconfigured(t *testing.T) {
	uc := NewAuthUseCase("", "test-secret", 3600)

	_, err := uc.Login("anything")

	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
}

func TestAuthVerifyRejectsForeignToken(t *testing.T) {
	issuer := NewAuthUseCase("hunter2", "secret-a", 3600)
	verifier := NewAuthUseCase("hunter2", "secret-b", 3600)

	token, err := issuer.Login("hunter2")
	require.NoError(t, err)

	err = verifier.VerifyToken(token)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestAuthVerifyRejectsExpiredToken(t *testing.T) {
	uc := NewAuthUseCase("hunter2", "test-secret", -10)

	token, err := uc.Login("hunter2")
	require.NoError(t, err)

	err = uc.VerifyToken(token)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

type fakeCountdownRepo struct {
	saved *entity.Countdown
}

func (f *fakeCountdownRepo) Get(_ context.Context) (entity.Countdown, error) {
	if f.saved == nil {
		return entity.DefaultCountdown(), nil
	}
	return *f.saved, nil
}

func (f *fakeCountdownRepo) Save(_ context.Context, c entity.Countdown) error {
	f.saved = &c
	return nil
}

func TestCountdownUpdateValidation(t *testing.T) {
	uc := NewCountdownUseCase(&fakeCountdownRepo{})
	ctx := context.Background()

	valid := entity.Countdown{Title: "Sale", TargetDate: "2026-10-01", TargetTime: "12:00", Visible: true}
	saved, err := uc.UpdateCountdown(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, valid, saved)

	got, err := uc.GetCountdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, valid, got)

	for _, bad := range []entity.Countdown{
		{Title: "", TargetDate: "2026-10-01", TargetTime: "12:00"},
		{Title: "Sale", TargetDate: "01-10-2026", TargetTime: "12:00"},
		{Title: "Sale", TargetDate: "2026-10-01", TargetTime: "noonish"},
	} {
		_, err := uc.UpdateCountdown(ctx, bad)
		assert.True(t, apperrors.Is(err, "BAD_REQUEST"), "expected BAD_REQUEST for %+v", bad)
	}
}

type stubImageStorage struct {
	url string
	err error
}

func (s *stubImageStorage) UploadFile(_ context.Context, _ io.Reader, _ string) (string, error) {
	return s.url, s.err
}

func TestUploadUseCase(t *testing.T) {
	ctx := context.Background()

	_, err := NewUploadUseCase(nil).UploadImage(ctx, strings.NewReader("img"), "image/png")
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))

	uc := NewUploadUseCase(&stubImageStorage{url: "https://storage.googleapis.com/bucket/x.png"})
	url, err := uc.UploadImage(ctx, strings.NewReader("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/bucket/x.png", url)
}
