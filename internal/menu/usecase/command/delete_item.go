package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
)

// DeleteItemCommand represents the command to remove a menu item
type DeleteItemCommand struct {
	ID uint
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo domain.MenuRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.MenuRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("item id is required")
	}

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return fmt.Errorf("menu item not found: %w", err)
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	return nil
}
