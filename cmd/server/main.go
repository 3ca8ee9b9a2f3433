package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bakeryshop/cart-service/config"
	"github.com/bakeryshop/cart-service/internal/adapter/handler"
	"github.com/bakeryshop/cart-service/internal/adapter/recipe"
	"github.com/bakeryshop/cart-service/internal/adapter/storage"
	"github.com/bakeryshop/cart-service/internal/core/service"
	"github.com/bakeryshop/cart-service/internal/pkg/logging"
	"github.com/bakeryshop/cart-service/internal/port"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = godotenv.Load()
	cfg := config.LoadEnv()

	logger, err := logging.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// MySQL
	db, err := sqlx.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logger.Fatal("failed to open mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping mysql", zap.Error(err))
	}
	logger.Info("connected to mysql")

	if err := storage.Migrate(ctx, db); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	// Redis; the cache is optional, so a missing Redis only disables it.
	var cache *storage.RedisAdapter
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, recipe caching disabled", zap.Error(err))
		rdb.Close()
		rdb = nil
	} else {
		logger.Info("connected to redis")
		cache = storage.NewRedisAdapter(rdb, cfg.Redis.RecipeTTL)
	}

	// Adapters and services
	store := storage.NewMySQLAdapter(db)
	lookup := recipe.NewHTTPClient(cfg.Recipe.BaseURL, cfg.Recipe.Timeout)

	// cacheRepo stays nil when Redis is down; the recipe service then skips
	// caching entirely.
	var cacheRepo port.CacheRepository
	if cache != nil {
		cacheRepo = cache
	}

	accounts := service.NewAccountService(store, logger)
	carts := service.NewCartService(store, logger)
	recipes := service.NewRecipeService(lookup, cacheRepo, logger)
	inventory := service.NewInventoryService(store, recipes, logger)

	if cfg.Seed.ItemName != "" && cfg.Seed.Quantity > 0 {
		if err := store.ReleaseStock(ctx, cfg.Seed.ItemName, cfg.Seed.Quantity); err != nil {
			logger.Fatal("failed to seed stock", zap.Error(err))
		}
		logger.Info("seeded initial stock",
			zap.String("item", cfg.Seed.ItemName),
			zap.Int("quantity", cfg.Seed.Quantity),
		)
	}

	// HTTP server
	mux := http.NewServeMux()
	httpHandler := handler.NewHTTPHandler(carts, accounts, inventory, logger)
	httpHandler.Register(mux)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: handler.ObservabilityMiddleware(logger)(mux),
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("http server stopped")

	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	logger.Info("connections closed")
}
