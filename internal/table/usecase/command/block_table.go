package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// BlockTableCommand marks a table occupied by a freshly placed order
type BlockTableCommand struct {
	TableNumber  int
	OrderID      uint
	CustomerName string
}

// BlockTableHandler handles block table command
type BlockTableHandler struct {
	repo domain.TableRepository
}

// NewBlockTableHandler creates a new block table handler
func NewBlockTableHandler(repo domain.TableRepository) *BlockTableHandler {
	return &BlockTableHandler{repo: repo}
}

// Handle executes the block table command
func (h *BlockTableHandler) Handle(cmd BlockTableCommand) (*domain.Table, error) {
	if cmd.TableNumber <= 0 {
		return nil, fmt.Errorf("table number is required")
	}
	if cmd.OrderID == 0 {
		return nil, fmt.Errorf("order id is required")
	}

	table, err := h.repo.FindByNumber(cmd.TableNumber)
	if err != nil {
		return nil, fmt.Errorf("table %d not found: %w", cmd.TableNumber, err)
	}

	// A reserved table is blocked by the arriving party's order
	if table.Status != domain.StatusOccupied {
		if err := table.Transition(domain.StatusOccupied); err != nil {
			return nil, err
		}
	}

	orderID := cmd.OrderID
	table.CurrentOrderID = &orderID
	table.CustomerName = cmd.CustomerName
	table.Stage = domain.StageWaiting

	if err := h.repo.Update(table); err != nil {
		return nil, fmt.Errorf("failed to block table: %w", err)
	}

	return table, nil
}
