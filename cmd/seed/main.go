// Command seed drops and recreates the schema, then loads a small demo
// dataset: two brands selling the same-named water bottle, one storage
// location, and a couple of items with expiration dates.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"stocktrack/internal/config"
	"stocktrack/internal/models"
	"stocktrack/internal/repositories"
	"stocktrack/pkg/database"
)

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

	if err := database.ResetSchema(ctx, pool); err != nil {
		slog.Error("failed to reset schema", "error", err)
		os.Exit(1)
	}
	slog.Info("schema reset")

	brands := repositories.NewBrandRepository(pool)
	itemTypes := repositories.NewItemTypeRepository(pool)
	locations := repositories.NewLocationRepository(pool)
	items := repositories.NewItemRepository(pool)

	nestle := &models.Brand{Name: "Nestlé"}
	crystal := &models.Brand{Name: "Crystal"}
	for _, brand := range []*models.Brand{nestle, crystal} {
		if err := brands.Create(ctx, brand); err != nil {
			slog.Error("failed to seed brand", "name", brand.Name, "error", err)
			os.Exit(1)
		}
	}

	// Same product name under two different brands; allowed by the
	// (name, brand_id) uniqueness rule.
	aguaNestle := &models.ItemType{Name: "Água", Description: "garrafa 500ml", BrandID: nestle.ID}
	aguaCrystal := &models.ItemType{Name: "Água", Description: "garrafa 500ml", BrandID: crystal.ID}
	for _, itemType := range []*models.ItemType{aguaNestle, aguaCrystal} {
		if err := itemTypes.Create(ctx, itemType); err != nil {
			slog.Error("failed to seed item type", "name", itemType.Name, "error", err)
			os.Exit(1)
		}
	}

	pantry := &models.Location{Name: "Despensa", Address: "Rua das Flores 100", City: "São Paulo"}
	if err := locations.Create(ctx, pantry); err != nil {
		slog.Error("failed to seed location", "name", pantry.Name, "error", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	seedItems := []*models.Item{
		{CreatedAt: now, ExpirationDate: models.NewDate(now.AddDate(0, 6, 0)), ItemTypeID: aguaNestle.ID, LocationID: pantry.ID},
		{CreatedAt: now, ExpirationDate: models.NewDate(now.AddDate(1, 0, 0)), ItemTypeID: aguaCrystal.ID, LocationID: pantry.ID},
	}
	for _, item := range seedItems {
		if err := items.Create(ctx, item); err != nil {
			slog.Error("failed to seed item", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("seed complete",
		"brands", 2,
		"item_types", 2,
		"locations", 1,
		"items", len(seedItems),
	)
}
