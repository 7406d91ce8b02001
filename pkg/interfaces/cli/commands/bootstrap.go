package commands

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/application/services"
	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/config"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/metrics"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/repositories/csv"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/repositories/memory"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/seed"
)

// NewShop builds a shop over fresh in-memory repositories holding the seed
// data, plus the stock file named by the inventory configuration.
func NewShop(cfg *config.Config, logger *zap.Logger, recorder *metrics.Recorder) (*services.Shop, error) {
	data, err := seed.Build(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build seed data: %w", err)
	}

	projectRepo := memory.NewProjectRepository()
	inventoryRepo := memory.NewInventoryRepository()
	orderRepo := memory.NewOrderRepository()
	if err := data.Load(projectRepo, inventoryRepo); err != nil {
		return nil, err
	}

	if cfg.Inventory.SeedCSV != "" {
		items, err := csv.NewLoader().LoadInventory(cfg.Inventory.SeedCSV)
		if err != nil {
			return nil, fmt.Errorf("error loading inventory: %w", err)
		}
		if err := inventoryRepo.LoadItems(items); err != nil {
			return nil, fmt.Errorf("failed to load inventory into repository: %w", err)
		}
		logger.Info("inventory loaded",
			zap.String("file", cfg.Inventory.SeedCSV),
			zap.Int("items", len(items)),
		)
	}

	opts := []services.ShopOption{
		services.WithLogger(logger),
		services.WithThresholds(entities.LowStockThresholds{
			entities.CategoryGlass:    entities.Quantity(cfg.Inventory.GlassLowStock),
			entities.CategoryHardware: entities.Quantity(cfg.Inventory.HardwareLowStock),
		}),
	}
	if recorder != nil {
		opts = append(opts, services.WithRecorder(recorder))
	}
	return services.NewShop(projectRepo, inventoryRepo, orderRepo, opts...), nil
}
