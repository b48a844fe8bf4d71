package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// UpdateStageCommand sets the finer-grained stage of an occupied table
type UpdateStageCommand struct {
	TableID uint
	Stage   string
}

// UpdateStageHandler handles update stage command
type UpdateStageHandler struct {
	repo domain.TableRepository
}

// NewUpdateStageHandler creates a new update stage handler
func NewUpdateStageHandler(repo domain.TableRepository) *UpdateStageHandler {
	return &UpdateStageHandler{repo: repo}
}

// Handle executes the update stage command
func (h *UpdateStageHandler) Handle(cmd UpdateStageCommand) error {
	if cmd.TableID == 0 {
		return fmt.Errorf("table id is required")
	}
	if !domain.ValidStage(cmd.Stage) {
		return fmt.Errorf("invalid stage: %s", cmd.Stage)
	}

	table, err := h.repo.FindByID(cmd.TableID)
	if err != nil {
		return fmt.Errorf("table not found: %w", err)
	}

	if table.Status != domain.StatusOccupied {
		return fmt.Errorf("table %d is not occupied", table.Number)
	}

	table.Stage = cmd.Stage
	if err := h.repo.Update(table); err != nil {
		return fmt.Errorf("failed to update stage: %w", err)
	}

	return nil
}
