package command

import (
	"fmt"
	"time"

	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

// CreateItemCommand represents the command to stock a new inventory item
type CreateItemCommand struct {
	Name         string
	Quantity     float64
	Unit         string
	MinThreshold float64
	MaxThreshold float64
	CostPerUnit  float64
	Supplier     string
	ExpiryDate   *time.Time
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo domain.InventoryRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.InventoryRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.InventoryItem, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.MaxThreshold > 0 && cmd.MinThreshold > cmd.MaxThreshold {
		return nil, fmt.Errorf("min threshold cannot exceed max threshold")
	}

	item := &domain.InventoryItem{
		Name:         cmd.Name,
		Quantity:     cmd.Quantity,
		Unit:         cmd.Unit,
		MinThreshold: cmd.MinThreshold,
		MaxThreshold: cmd.MaxThreshold,
		CostPerUnit:  cmd.CostPerUnit,
		Supplier:     cmd.Supplier,
		ExpiryDate:   cmd.ExpiryDate,
	}
	if item.Unit == "" {
		item.Unit = "kg"
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return item, nil
}
