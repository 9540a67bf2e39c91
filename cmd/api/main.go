package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ruya/internal/adapter/api"
	"ruya/internal/adapter/api/handler"
	apimiddleware "ruya/internal/adapter/api/middleware"
	"ruya/internal/adapter/api/router"
	"ruya/internal/adapter/repository"
	"ruya/internal/cart"
	"ruya/internal/infrastructure/storage"
	"ruya/internal/usecase"
	"ruya/pkg/config"
	"ruya/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	db, err := repository.OpenDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	productRepo := repository.NewGormProductRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	countdownRepo := repository.NewFileCountdownRepository(cfg.DataDir)

	cartManager := cart.NewManager(cfg.DataDir)

	// Image upload is optional; without a bucket the admin upload endpoint
	// returns a configuration error instead of failing startup.
	var imageStorage usecase.ImageStorage
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.GCPProject, cfg.GCPCredFile)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		imageStorage = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET not set, image uploads disabled")
	}

	productUseCase := usecase.NewProductUseCase(productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	countdownUseCase := usecase.NewCountdownUseCase(countdownRepo)
	authUseCase := usecase.NewAuthUseCase(cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiry)
	uploadUseCase := usecase.NewUploadUseCase(imageStorage)

	handler.Setup(productUseCase, orderUseCase, countdownUseCase, authUseCase, cartManager)
	handler.SetupUploadHandler(uploadUseCase)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	adminMiddleware := apimiddleware.NewAdminMiddleware(authUseCase)

	router.Setup(e, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
