package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	allocatorUseCase "github.com/amirhossein-jamali/slot-booking/internal/domain/usecase/allocator"
	dashboardUseCase "github.com/amirhossein-jamali/slot-booking/internal/domain/usecase/dashboard"
	inventoryUseCase "github.com/amirhossein-jamali/slot-booking/internal/domain/usecase/inventory"
	userUseCase "github.com/amirhossein-jamali/slot-booking/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	slotRepo := repository.NewSlotRepository(dbManager.DB(), appLogger)
	bookingRepo := repository.NewBookingRepository(dbManager.DB(), appLogger)

	// Optional collaborators: redis slot cache and kafka event publisher.
	// An empty address or broker list disables them.
	var slotCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		slotCache = cache.NewRedisCache(cache.Config{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			ListingTTL: cfg.Redis.ListingTTL,
		}, appLogger)
		if err := slotCache.Ping(context.Background()); err != nil {
			appLogger.Warn("Redis unavailable, continuing without slot cache", map[string]any{
				"addr":  cfg.Redis.Addr,
				"error": err.Error(),
			})
			slotCache = nil
		} else {
			defer slotCache.Close()
		}
	}

	var publisher *events.KafkaPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(events.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, appLogger)
		defer publisher.Close()
	}

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewService(userRepo, tp, appLogger)

	allocatorOpts := []allocatorUseCase.Option{
		allocatorUseCase.WithMaxActiveBookings(cfg.Booking.MaxActivePerUser),
		allocatorUseCase.WithSlotLockTTL(cfg.Booking.SlotLockTTL),
	}
	inventoryOpts := []inventoryUseCase.Option{}
	if slotCache != nil {
		allocatorOpts = append(allocatorOpts, allocatorUseCase.WithSlotCache(slotCache))
		inventoryOpts = append(inventoryOpts, inventoryUseCase.WithSlotCache(slotCache))
	}
	if publisher != nil {
		allocatorOpts = append(allocatorOpts, allocatorUseCase.WithPublisher(publisher))
	}

	allocatorImpl := allocatorUseCase.NewService(userRepo, slotRepo, bookingRepo, tp, appLogger, allocatorOpts...)
	inventoryImpl := inventoryUseCase.NewService(slotRepo, bookingRepo, tp, appLogger, inventoryOpts...)
	dashboardImpl := dashboardUseCase.NewService(slotRepo, bookingRepo, tp, appLogger)

	// Create the bootstrap admin account
	if err := migration.CreateDefaultAdmin(context.Background(), userUseCaseImpl, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		appLogger.Error("Failed to create default admin", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(userUseCaseImpl, appLogger)
	slotHandler := handler.NewSlotHandler(inventoryImpl, userUseCaseImpl, appLogger)
	bookingHandler := handler.NewBookingHandler(allocatorImpl, appLogger)
	dashboardHandler := handler.NewDashboardHandler(dashboardImpl, userUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	// Setup routes
	routes.SetupRoutes(router, authHandler, slotHandler, bookingHandler, dashboardHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or SB_DB_HOST environment variable)")
	}
	if cfg.Database.Port == 0 {
		missing = append(missing, "database.port (or SB_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or SB_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or SB_DB_NAME environment variable)")
	}

	if cfg.Booking.MaxActivePerUser <= 0 {
		missing = append(missing, "booking.maxActivePerUser")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
