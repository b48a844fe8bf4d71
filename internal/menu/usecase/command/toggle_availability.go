package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
)

// ToggleAvailabilityCommand flips whether an item can be ordered
type ToggleAvailabilityCommand struct {
	ID        uint
	Available bool
}

// ToggleAvailabilityHandler handles toggle availability command
type ToggleAvailabilityHandler struct {
	repo domain.MenuRepository
}

// NewToggleAvailabilityHandler creates a new toggle availability handler
func NewToggleAvailabilityHandler(repo domain.MenuRepository) *ToggleAvailabilityHandler {
	return &ToggleAvailabilityHandler{repo: repo}
}

// Handle executes the toggle availability command
func (h *ToggleAvailabilityHandler) Handle(cmd ToggleAvailabilityCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("item id is required")
	}

	if err := h.repo.SetAvailability(cmd.ID, cmd.Available); err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	return nil
}
