package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/api"
	"github.com/hanashop/storefront/internal/cart"
	"github.com/hanashop/storefront/internal/catalog"
	"github.com/hanashop/storefront/internal/checkout"
	"github.com/hanashop/storefront/internal/config"
	"github.com/hanashop/storefront/internal/order"
	"github.com/hanashop/storefront/internal/repository"
	"github.com/hanashop/storefront/internal/repository/memory"
	"github.com/hanashop/storefront/internal/repository/postgres"
	"github.com/hanashop/storefront/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Repositories: seeded in-memory catalog by default, postgres when configured
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize repositories", zap.Error(err))
	}

	// Session store: carts and checkout state
	store := buildSessionStore(cfg)

	cartStore := cart.NewStore(store, repos.Product, logger)
	orderSvc := order.NewService(repos.Order, logger)

	svcs := &api.Services{
		Catalog:  catalog.NewService(repos.Product, logger),
		Cart:     cartStore,
		Checkout: checkout.NewManager(store, cartStore, orderSvc, logger),
		Orders:   orderSvc,
	}

	router := api.NewRouter(cfg, svcs, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("repository_backend", cfg.Storage.Repository),
		zap.String("session_backend", cfg.Storage.Session),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func buildRepositories(cfg *config.Config, logger *zap.Logger) (*repository.Repositories, error) {
	if cfg.Storage.Repository == "postgres" {
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return &repository.Repositories{
			Product: postgres.NewProductRepository(db, logger),
			Order:   postgres.NewOrderRepository(db, logger),
		}, nil
	}

	return &repository.Repositories{
		Product: memory.NewProductRepository(),
		Order:   memory.NewOrderRepository(),
	}, nil
}

func buildSessionStore(cfg *config.Config) storage.Store {
	if cfg.Storage.Session == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return storage.NewRedisStore(client)
	}
	return storage.NewMemoryStore()
}
