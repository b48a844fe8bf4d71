package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// ReleaseTableCommand frees a table after its order has been paid
type ReleaseTableCommand struct {
	TableID uint
}

// ReleaseTableHandler handles release table command
type ReleaseTableHandler struct {
	repo domain.TableRepository
}

// NewReleaseTableHandler creates a new release table handler
func NewReleaseTableHandler(repo domain.TableRepository) *ReleaseTableHandler {
	return &ReleaseTableHandler{repo: repo}
}

// Handle executes the release table command
func (h *ReleaseTableHandler) Handle(cmd ReleaseTableCommand) error {
	if cmd.TableID == 0 {
		return fmt.Errorf("table id is required")
	}

	table, err := h.repo.FindByID(cmd.TableID)
	if err != nil {
		return fmt.Errorf("table not found: %w", err)
	}

	if table.Status == domain.StatusAvailable {
		return nil
	}

	if err := table.Transition(domain.StatusAvailable); err != nil {
		return err
	}
	table.CurrentOrderID = nil
	table.CustomerName = ""
	table.Stage = ""

	if err := h.repo.Update(table); err != nil {
		return fmt.Errorf("failed to release table: %w", err)
	}

	return nil
}
