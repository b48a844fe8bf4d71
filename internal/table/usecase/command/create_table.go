package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
)

// CreateTableCommand represents the command to add a table to the floor plan
type CreateTableCommand struct {
	Number   int
	Capacity int
	PosX     float64
	PosY     float64
	Shape    string
}

// CreateTableHandler handles create table command
type CreateTableHandler struct {
	repo domain.TableRepository
}

// NewCreateTableHandler creates a new create table handler
func NewCreateTableHandler(repo domain.TableRepository) *CreateTableHandler {
	return &CreateTableHandler{repo: repo}
}

// Handle executes the create table command
func (h *CreateTableHandler) Handle(cmd CreateTableCommand) (*domain.Table, error) {
	if cmd.Number <= 0 {
		return nil, fmt.Errorf("table number must be positive")
	}
	if cmd.Capacity <= 0 {
		cmd.Capacity = 4
	}

	if _, err := h.repo.FindByNumber(cmd.Number); err == nil {
		return nil, fmt.Errorf("table %d already exists", cmd.Number)
	}

	shape := cmd.Shape
	if shape == "" {
		shape = "square"
	}

	table := &domain.Table{
		Number:   cmd.Number,
		Capacity: cmd.Capacity,
		Status:   domain.StatusAvailable,
		PosX:     cmd.PosX,
		PosY:     cmd.PosY,
		Shape:    shape,
	}

	if err := h.repo.Create(table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return table, nil
}
