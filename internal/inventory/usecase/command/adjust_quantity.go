package command

import (
	"context"
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// AdjustQuantityCommand applies a signed delta to an item's stock.
// Deliveries are positive, kitchen usage negative.
type AdjustQuantityCommand struct {
	ID    uint
	Delta float64
}

// AdjustQuantityHandler handles adjust quantity command
type AdjustQuantityHandler struct {
	repo domain.InventoryRepository
}

// NewAdjustQuantityHandler creates a new adjust quantity handler
func NewAdjustQuantityHandler(repo domain.InventoryRepository) *AdjustQuantityHandler {
	return &AdjustQuantityHandler{repo: repo}
}

// Handle executes the adjust quantity command. Stock is allowed to go
// negative; a warning is logged when the item drops to its reorder
// level.
func (h *AdjustQuantityHandler) Handle(ctx context.Context, cmd AdjustQuantityCommand) (*domain.InventoryItem, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("item id is required")
	}
	if cmd.Delta == 0 {
		return nil, fmt.Errorf("delta must be non-zero")
	}

	item, err := h.repo.AdjustQuantity(cmd.ID, cmd.Delta)
	if err != nil {
		return nil, err
	}

	if item.IsLowStock() {
		logger.Warn(ctx).
			Str("item", item.Name).
			Float64("quantity", item.Quantity).
			Float64("min_threshold", item.MinThreshold).
			Msg("Inventory item at or below reorder level")
	}

	return item, nil
}
