package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// SetStatusCommand moves a table through its status machine directly
// (reserve, send to cleaning, reopen). Order and payment flows use the
// dedicated block/release commands instead.
type SetStatusCommand struct {
	TableID uint
	Status  string
}

// SetStatusHandler handles set status command
type SetStatusHandler struct {
	repo domain.TableRepository
}

// NewSetStatusHandler creates a new set status handler
func NewSetStatusHandler(repo domain.TableRepository) *SetStatusHandler {
	return &SetStatusHandler{repo: repo}
}

// Handle executes the set status command
func (h *SetStatusHandler) Handle(cmd SetStatusCommand) (*domain.Table, error) {
	if cmd.TableID == 0 {
		return nil, fmt.Errorf("table id is required")
	}

	table, err := h.repo.FindByID(cmd.TableID)
	if err != nil {
		return nil, fmt.Errorf("table not found: %w", err)
	}

	if err := table.Transition(cmd.Status); err != nil {
		return nil, err
	}

	if cmd.Status != domain.StatusOccupied {
		table.CurrentOrderID = nil
		table.CustomerName = ""
		table.Stage = ""
	}

	if err := h.repo.Update(table); err != nil {
		return nil, fmt.Errorf("failed to update table status: %w", err)
	}

	return table, nil
}
