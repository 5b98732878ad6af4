package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stocktrack/internal/config"
	"stocktrack/internal/handlers"
	"stocktrack/internal/repositories"
	"stocktrack/internal/services"
	"stocktrack/pkg/database"
	"stocktrack/pkg/validator"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		slog.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	// Repositories
	brandRepo := repositories.NewBrandRepository(pool)
	itemTypeRepo := repositories.NewItemTypeRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)

	// Services
	brandSvc := services.NewBrandService(brandRepo)
	itemTypeSvc := services.NewItemTypeService(itemTypeRepo, brandRepo)
	locationSvc := services.NewLocationService(locationRepo)
	itemSvc := services.NewItemService(itemRepo, itemTypeRepo, locationRepo)

	// Handlers
	brandHandlers := handlers.NewBrandHandlers(brandSvc)
	itemTypeHandlers := handlers.NewItemTypeHandlers(itemTypeSvc)
	locationHandlers := handlers.NewLocationHandlers(locationSvc)
	itemHandlers := handlers.NewItemHandlers(itemSvc)
	catalogHandlers := handlers.NewCatalogHandlers(itemTypeSvc)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.NewEcho()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Health endpoints
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", func(c echo.Context) error {
		return handlers.ReadinessCheck(c, pool)
	})

	// Brand routes
	e.POST("/new_brand", brandHandlers.Create)
	e.GET("/id_brand/:id", brandHandlers.Get)
	e.DELETE("/id_brand/:id", brandHandlers.Delete)
	e.PATCH("/id_brand/:id", brandHandlers.Patch)

	// Item type routes; /create_item_type is a historical alias
	e.POST("/new_item_type", itemTypeHandlers.Create)
	e.POST("/create_item_type", itemTypeHandlers.Create)
	e.GET("/id_item_type/:id", itemTypeHandlers.Get)
	e.DELETE("/id_item_type/:id", itemTypeHandlers.Delete)
	e.PATCH("/id_item_type/:id", itemTypeHandlers.Patch)
	e.GET("/all_item_type_brand", catalogHandlers.ListItemTypesWithBrand)
	e.GET("/item_type", catalogHandlers.ListItemTypesWithBrand)

	// Location routes
	e.POST("/new_location", locationHandlers.Create)
	e.GET("/id_location/:id", locationHandlers.Get)
	e.DELETE("/id_location/:id", locationHandlers.Delete)
	e.PATCH("/id_location/:id", locationHandlers.Patch)

	// Item routes
	e.POST("/new_item", itemHandlers.Create)
	e.GET("/id_item/:id", itemHandlers.Get)
	e.DELETE("/id_item/:id", itemHandlers.Delete)
	e.PATCH("/id_item/:id", itemHandlers.Patch)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		slog.Info("starting server", "version", version, "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
