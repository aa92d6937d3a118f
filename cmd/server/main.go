package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/pedidoflow/backend/internal/application/identity"
	orderingapp "github.com/pedidoflow/backend/internal/application/ordering"
	domainordering "github.com/pedidoflow/backend/internal/domain/ordering"
	"github.com/pedidoflow/backend/internal/infrastructure/auth"
	"github.com/pedidoflow/backend/internal/infrastructure/config"
	"github.com/pedidoflow/backend/internal/infrastructure/logger"
	"github.com/pedidoflow/backend/internal/infrastructure/persistence"
	"github.com/pedidoflow/backend/internal/interfaces/http/handler"
	"github.com/pedidoflow/backend/internal/interfaces/http/middleware"
	"github.com/pedidoflow/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PedidoFlow Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Select the order store. An empty DSN means the service runs on
	// the in-memory store; otherwise PostgreSQL is required at startup.
	var (
		orderRepo domainordering.OrderRepository
		db        *persistence.Database
	)
	if cfg.Database.UseMemoryStore() {
		orderRepo = persistence.NewMemoryOrderRepository()
		log.Info("Using in-memory order store, data will not survive restarts")
	} else {
		db, err = persistence.NewDatabase(&cfg.Database, log, cfg.Log.Level)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}()

		if err := db.Migrate(); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
		orderRepo = persistence.NewGormOrderRepository(db.DB)
		log.Info("Database connected successfully")
	}

	// Application services
	orderService := orderingapp.NewService(orderRepo)
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(cfg.Auth, jwtService, log)

	// HTTP handlers
	authMW := middleware.JWTAuth(jwtService, log)
	orderHandler := handler.NewOrderHandler(orderService, authMW)
	authHandler := handler.NewAuthHandler(authService)

	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}
	systemHandler := handler.NewSystemHandler(pinger)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	router.NewRouter(engine).
		Register(authHandler).
		Register(orderHandler).
		Register(systemHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
