package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/frontandrew/fleet/internal/delivery/http"
	"github.com/frontandrew/fleet/internal/pkg/config"
	"github.com/frontandrew/fleet/internal/pkg/database"
	"github.com/frontandrew/fleet/internal/pkg/jwt"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/frontandrew/fleet/internal/pkg/redis"
	"github.com/frontandrew/fleet/internal/repository"
	"github.com/frontandrew/fleet/internal/repository/cached"
	"github.com/frontandrew/fleet/internal/repository/postgres"
	"github.com/frontandrew/fleet/internal/usecase/auth"
	"github.com/frontandrew/fleet/internal/usecase/fleet"
	"github.com/frontandrew/fleet/internal/usecase/rental"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting Fleet API server", map[string]interface{}{
		"version": "1.0.0",
	})

	// =========================================================================
	// Подключение к PostgreSQL (с миграциями)
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// =========================================================================
	// Подключение к Redis
	// =========================================================================

	cache, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer cache.Close()

	log.Info("Connected to Redis", map[string]interface{}{
		"host": cfg.Redis.Host,
		"port": cfg.Redis.Port,
	})

	// =========================================================================
	// Создание repositories
	// =========================================================================

	userRepo := postgres.NewUserRepository(db)

	var vehicleRepo repository.VehicleRepository = postgres.NewVehicleRepository(db)
	vehicleRepo = cached.NewVehicleRepository(vehicleRepo, cache)

	log.Info("Repositories initialized")

	// =========================================================================
	// Создание JWT token service
	// =========================================================================

	tokenService := jwt.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.AccessExpiry)

	// =========================================================================
	// Создание use case services
	// =========================================================================

	authService := auth.NewService(userRepo, tokenService, log)
	rentalService := rental.NewService(vehicleRepo, log)
	fleetService := fleet.NewService(vehicleRepo, log)

	if err := authService.Bootstrap(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to bootstrap admin account", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Use case services initialized")

	// =========================================================================
	// Создание HTTP handlers и router
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, log)
	rentalHandler := deliveryHTTP.NewRentalHandler(rentalService, log)
	fleetHandler := deliveryHTTP.NewFleetHandler(fleetService, log)

	router := deliveryHTTP.NewRouter(
		authHandler,
		rentalHandler,
		fleetHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})
			_ = srv.Close()
		}

		log.Info("Server stopped")
	}
}
