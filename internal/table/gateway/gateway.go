package gateway

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
	"github.com/dhaba/restaurant-pos/internal/table/usecase/command"
)

// TableGateway adapts the table module's commands for the order and
// payment modules, which address tables by number rather than ID.
type TableGateway struct {
	repo    domain.TableRepository
	block   *command.BlockTableHandler
	stage   *command.UpdateStageHandler
	release *command.ReleaseTableHandler
}

// NewTableGateway creates a new table gateway
func NewTableGateway(repo domain.TableRepository) *TableGateway {
	return &TableGateway{
		repo:    repo,
		block:   command.NewBlockTableHandler(repo),
		stage:   command.NewUpdateStageHandler(repo),
		release: command.NewReleaseTableHandler(repo),
	}
}

// BlockForOrder marks the table occupied by a freshly placed order
func (g *TableGateway) BlockForOrder(tableNumber int, orderID uint, customerName string) error {
	_, err := g.block.Handle(command.BlockTableCommand{
		TableNumber:  tableNumber,
		OrderID:      orderID,
		CustomerName: customerName,
	})
	return err
}

// SetStageForTable mirrors kitchen progress onto the table's stage
func (g *TableGateway) SetStageForTable(tableNumber int, stage string) error {
	table, err := g.repo.FindByNumber(tableNumber)
	if err != nil {
		return fmt.Errorf("table %d not found: %w", tableNumber, err)
	}
	return g.stage.Handle(command.UpdateStageCommand{
		TableID: table.ID,
		Stage:   stage,
	})
}

// ReleaseByOrder frees the table once its bill is settled
func (g *TableGateway) ReleaseByOrder(tableNumber int) error {
	table, err := g.repo.FindByNumber(tableNumber)
	if err != nil {
		return fmt.Errorf("table %d not found: %w", tableNumber, err)
	}
	return g.release.Handle(command.ReleaseTableCommand{TableID: table.ID})
}

// MarkReserved holds the table for a confirmed reservation
func (g *TableGateway) MarkReserved(tableNumber int, customerName string) error {
	table, err := g.repo.FindByNumber(tableNumber)
	if err != nil {
		return fmt.Errorf("table %d not found: %w", tableNumber, err)
	}
	if err := table.Transition(domain.StatusReserved); err != nil {
		return err
	}
	table.CustomerName = customerName
	return g.repo.Update(table)
}

// MarkAvailableIfReserved reopens the table after a reservation is
// cancelled. A table already seated by a walk-in is left alone.
func (g *TableGateway) MarkAvailableIfReserved(tableNumber int) error {
	table, err := g.repo.FindByNumber(tableNumber)
	if err != nil {
		return fmt.Errorf("table %d not found: %w", tableNumber, err)
	}
	if table.Status != domain.StatusReserved {
		return nil
	}
	if err := table.Transition(domain.StatusAvailable); err != nil {
		return err
	}
	table.CustomerName = ""
	return g.repo.Update(table)
}
