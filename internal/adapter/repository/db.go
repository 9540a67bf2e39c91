package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ruya/internal/domain/entity"
	"ruya/pkg/logger"
)

// OpenDatabase opens (creating if necessary) the embedded SQLite store and
// migrates the storefront schema.
func OpenDatabase(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&entity.Product{}, &entity.Order{}, &entity.OrderItem{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	if err := seedProducts(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedProducts inserts the default catalog the first time the store starts
// with an empty products table.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []entity.Product{
		{Name: "Classic Aviator", Description: "Timeless aviator sunglasses with premium lenses", Price: 89.99, Image: "/images/aviator.jpg", Category: "Sunglasses", Featured: true, Bestseller: true},
		{Name: "Modern Round", Description: "Contemporary round frames for a sophisticated look", Price: 129.99, Image: "/images/round.jpg", Category: "Eyeglasses", Featured: true, Bestseller: true},
		{Name: "Sport Performance", Description: "Lightweight sports eyewear with UV protection", Price: 149.99, Image: "/images/sport.jpg", Category: "Sunglasses"},
		{Name: "Vintage Square", Description: "Retro square frames with modern comfort", Price: 99.99, Image: "/images/square.jpg", Category: "Eyeglasses"},
		{Name: "Premium Metal", Description: "Luxury metal frames with premium materials", Price: 199.99, Image: "/images/metal.jpg", Category: "Eyeglasses", Featured: true},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	logger.Info("Seeded %d default products", len(defaults))
	return nil
}
