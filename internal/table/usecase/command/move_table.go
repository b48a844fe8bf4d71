package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// MoveTableCommand persists floor-plan coordinates after a drag
type MoveTableCommand struct {
	TableID uint
	PosX    float64
	PosY    float64
}

// MoveTableHandler handles move table command
type MoveTableHandler struct {
	repo domain.TableRepository
}

// NewMoveTableHandler creates a new move table handler
func NewMoveTableHandler(repo domain.TableRepository) *MoveTableHandler {
	return &MoveTableHandler{repo: repo}
}

// Handle executes the move table command
func (h *MoveTableHandler) Handle(cmd MoveTableCommand) error {
	if cmd.TableID == 0 {
		return fmt.Errorf("table id is required")
	}

	table, err := h.repo.FindByID(cmd.TableID)
	if err != nil {
		return fmt.Errorf("table not found: %w", err)
	}

	table.PosX = cmd.PosX
	table.PosY = cmd.PosY

	if err := h.repo.Update(table); err != nil {
		return fmt.Errorf("failed to move table: %w", err)
	}

	return nil
}
