package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an inventory item
type DeleteItemCommand struct {
	ID uint
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo domain.InventoryRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.InventoryRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) error {
	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return fmt.Errorf("inventory item not found: %w", err)
	}
	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}
