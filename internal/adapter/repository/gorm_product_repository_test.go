package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ruya/internal/domain/entity"
	apperrors "ruya/pkg/errors"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.Product{}, &entity.Order{}, &entity.OrderItem{}))
	return db
}

func TestProductRepositoryCreateAndGet(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	ctx := context.Background()

	product := &entity.Product{
		Name:        "Classic Aviator",
		Description: "Timeless aviator sunglasses",
		Price:       89.99,
		Category:    "Sunglasses",
		Featured:    true,
	}
	require.NoError(t, repo.Create(ctx, product))
	require.NotZero(t, product.ID)

	found, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classic Aviator", found.Name)
	assert.InDelta(t, 89.99, found.Price, 1e-9)
	assert.True(t, found.Featured)
}

func TestProductRepositoryGetMissing(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 12345)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestProductRepositoryListOrdersByRecency(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Create(ctx, &entity.Product{Name: name, Price: 10}))
	}
	// Make creation times distinct; sqlite timestamps may otherwise collide.
	require.NoError(t, db.Model(&entity.Product{}).Where("name = ?", "Third").
		Update("created_at", gorm.Expr("datetime('now', '+1 hour')")).Error)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Third", products[0].Name)
}

func TestProductRepositoryFlagQueries(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Plain", Price: 10}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Star", Price: 20, Featured: true}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Hot", Price: 30, Bestseller: true}))

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Star", featured[0].Name)

	bestsellers, err := repo.ListBestsellers(ctx)
	require.NoError(t, err)
	require.Len(t, bestsellers, 1)
	assert.Equal(t, "Hot", bestsellers[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestProductRepositoryCategories(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "A", Price: 1, Category: "Sunglasses"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "B", Price: 2, Category: "Eyeglasses"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "C", Price: 3, Category: "Sunglasses"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "D", Price: 4}))

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eyeglasses", "Sunglasses"}, categories)
}

func TestProductRepositoryUpdate(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	ctx := context.Background()

	product := &entity.Product{Name: "Original", Price: 50, Category: "Sunglasses"}
	require.NoError(t, repo.Create(ctx, product))

	product.Name = "Updated"
	product.Price = 75
	product.Featured = true
	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", found.Name)
	assert.InDelta(t, 75, found.Price, 1e-9)
	assert.True(t, found.Featured)
}

func TestProductRepositoryUpdateMissing(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))

	err := repo.Update(context.Background(), &entity.Product{ID: 999, Name: "Ghost", Price: 1})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestProductRepositoryDelete(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	ctx := context.Background()

	product := &entity.Product{Name: "Doomed", Price: 9.99}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.GetByID(ctx, product.ID)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))

	err = repo.Delete(ctx, product.ID)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestOrderRepositoryCreateAndList(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))
	ctx := context.Background()

	order := &entity.Order{
		ID:            "ord-1",
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "+123456",
		Address:       "1 Main St",
		TotalAmount:   199.98,
		Status:        entity.OrderStatusPending,
		PaymentMethod: "Cash on Delivery",
		Items: []entity.OrderItem{
			{ProductID: 1, ProductName: "Classic Aviator", Quantity: 2, Price: 89.99},
			{ProductID: 2, ProductName: "Modern Round", Quantity: 1, Price: 19.99},
		},
	}
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", found.CustomerName)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "Classic Aviator", found.Items[0].ProductName)

	orders, total, err := repo.List(ctx, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Order{
		ID: "ord-2", CustomerName: "John", Email: "j@example.com",
		Phone: "1", Address: "a", TotalAmount: 10, Status: entity.OrderStatusPending,
	}))

	require.NoError(t, repo.UpdateStatus(ctx, "ord-2", entity.OrderStatusShipped))

	found, err := repo.GetByID(ctx, "ord-2")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, found.Status)

	err = repo.UpdateStatus(ctx, "missing", entity.OrderStatusShipped)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestOrderRepositoryDeleteRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Order{
		ID: "ord-3", CustomerName: "John", Email: "j@example.com",
		Phone: "1", Address: "a", TotalAmount: 10, Status: entity.OrderStatusPending,
		Items: []entity.OrderItem{{ProductID: 1, ProductName: "X", Quantity: 1, Price: 10}},
	}))

	require.NoError(t, repo.Delete(ctx, "ord-3"))

	var itemCount int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	err := repo.Delete(ctx, "ord-3")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestCountdownRepositoryDefaultsAndRoundTrip(t *testing.T) {
	repo := NewFileCountdownRepository(t.TempDir())
	ctx := context.Background()

	countdown, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCountdown(), countdown)

	updated := entity.Countdown{
		Title:      "Summer Sale",
		TargetDate: "2026-09-30",
		TargetTime: "18:00",
		Visible:    false,
	}
	require.NoError(t, repo.Save(ctx, updated))

	found, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}
