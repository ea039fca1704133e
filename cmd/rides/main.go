package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ridepool/ridepool/internal/pkg/config"
	"github.com/ridepool/ridepool/internal/pkg/database"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	nsqpkg "github.com/ridepool/ridepool/internal/pkg/nsq"
	"github.com/ridepool/ridepool/services/rides/gateway"
	"github.com/ridepool/ridepool/services/rides/handler"
	"github.com/ridepool/ridepool/services/rides/repository"
	"github.com/ridepool/ridepool/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client for board page caching
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for claim notifications
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Initialize repositories
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	profileRepo := repository.NewProfileRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	notifyGW := gateway.NewNotifyGW(configs, nsqProducer)

	// Initialize usecase
	rideUC, err := usecase.NewRideUC(configs, rideRepo, profileRepo, notifyGW, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}

	// Initialize handlers
	rideHandler := handler.NewHandler(rideUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register service routes
	rideHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Stopping NSQ producer...")
	nsqProducer.Stop()

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
