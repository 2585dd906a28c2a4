package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/prasongk/fleetview/internal/pkg/config"
	"github.com/prasongk/fleetview/internal/pkg/database"
	"github.com/prasongk/fleetview/internal/pkg/health"
	"github.com/prasongk/fleetview/internal/pkg/logger"
	"github.com/prasongk/fleetview/internal/pkg/server"
	ws "github.com/prasongk/fleetview/internal/pkg/websocket"
	"github.com/prasongk/fleetview/services/mapview"
	"github.com/prasongk/fleetview/services/mapview/gateway/http"
	"github.com/prasongk/fleetview/services/mapview/handler"
	"github.com/prasongk/fleetview/services/mapview/repository"
	"github.com/prasongk/fleetview/services/mapview/usecase"
)

func main() {
	appName := "mapview-service"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:  configs.Logger.Level,
		Format: configs.Logger.Format,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize shutdown manager
	shutdownManager := server.NewShutdownManager(zapLogger)

	// Geocode cache: Redis when configured, in-memory otherwise
	var geocodeCache mapview.GeocodeCacheRepo
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			return redisClient.Close()
		})
		geocodeCache = repository.NewGeocodeRepository(redisClient)
	} else {
		zapLogger.Warn("Redis not configured, geocode cache is in-memory only")
		geocodeCache = repository.NewMemoryGeocodeRepository()
	}

	// Initialize WebSocket manager for live map viewers
	wsManager := ws.NewManager()
	shutdownManager.Register(wsManager.Close)

	// Initialize gateways
	fleetGW := gateway_http.NewFleetClient(configs.Upstream)
	directionsGW := gateway_http.NewDirectionsClient(configs.Directions)
	geocodeGW := gateway_http.NewGeocodeClient(configs.Geocode)

	// Initialize usecase
	mapviewUC := usecase.NewMapViewUC(configs, fleetGW, directionsGW, geocodeGW, geocodeCache, wsManager)

	// Start the fleet position poll
	mapviewUC.StartFeed(context.Background())
	shutdownManager.Register(func(ctx context.Context) error {
		mapviewUC.StopFeed()
		return nil
	})

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health endpoints with dependency probes
	checks := map[string]health.Check{
		"fleet_feed": func(ctx context.Context) error {
			if mapviewUC.FeedStatus().LastSuccess.IsZero() {
				return errors.New("no successful fleet poll yet")
			}
			return nil
		},
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Ping
	}
	health.RegisterHealthEndpoints(e, appName, checks)

	// Register map view routes
	httpHandler := handler.NewHTTPHandler(mapviewUC, wsManager, configs)
	httpHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	// Shut down components after the server drains
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
