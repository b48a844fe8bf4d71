package command

import (
	"fmt"
	"time"

	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

// UpdateItemCommand represents the command to update an inventory item
type UpdateItemCommand struct {
	ID           uint
	Name         string
	Quantity     *float64
	Unit         string
	MinThreshold *float64
	MaxThreshold *float64
	CostPerUnit  *float64
	Supplier     string
	ExpiryDate   *time.Time
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo domain.InventoryRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.InventoryRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.InventoryItem, error) {
	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("inventory item not found: %w", err)
	}

	if cmd.Name != "" {
		item.Name = cmd.Name
	}
	if cmd.Quantity != nil {
		item.Quantity = *cmd.Quantity
	}
	if cmd.Unit != "" {
		item.Unit = cmd.Unit
	}
	if cmd.MinThreshold != nil {
		item.MinThreshold = *cmd.MinThreshold
	}
	if cmd.MaxThreshold != nil {
		item.MaxThreshold = *cmd.MaxThreshold
	}
	if cmd.CostPerUnit != nil {
		item.CostPerUnit = *cmd.CostPerUnit
	}
	if cmd.Supplier != "" {
		item.Supplier = cmd.Supplier
	}
	if cmd.ExpiryDate != nil {
		item.ExpiryDate = cmd.ExpiryDate
	}

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}
