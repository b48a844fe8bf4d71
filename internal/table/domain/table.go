package domain

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Table statuses
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusReserved  = "reserved"
	StatusCleaning  = "cleaning"
)

// Order stages for an occupied table (drives the floor-plan colors)
const (
	StageWaiting   = "waiting"
	StagePreparing = "preparing"
	StageServed    = "served"
	StageBilling   = "billing"
)

// ErrIllegalTransition is returned when a status change is not allowed
// from the table's current status.
var ErrIllegalTransition = errors.New("illegal table status transition")

// statusTransitions maps each status to the statuses reachable from it.
var statusTransitions = map[string][]string{
	StatusAvailable: {StatusOccupied, StatusReserved, StatusCleaning},
	StatusOccupied:  {StatusCleaning, StatusAvailable},
	StatusReserved:  {StatusOccupied, StatusAvailable, StatusCleaning},
	StatusCleaning:  {StatusAvailable},
}

// ValidStatus reports whether s is a known table status
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// ValidStage reports whether s is a known order stage
func ValidStage(s string) bool {
	switch s {
	case StageWaiting, StagePreparing, StageServed, StageBilling:
		return true
	}
	return false
}

// Table represents a dining table on the floor plan
type Table struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Number         int            `json:"number" gorm:"uniqueIndex;not null"`
	Capacity       int            `json:"capacity" gorm:"not null;default:4"`
	Status         string         `json:"status" gorm:"not null;default:'available'"`
	Stage          string         `json:"stage"`
	CurrentOrderID *uint          `json:"current_order_id"`
	CustomerName   string         `json:"customer_name"`
	PosX           float64        `json:"pos_x"`
	PosY           float64        `json:"pos_y"`
	Shape          string         `json:"shape" gorm:"default:'square'"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Table) TableName() string {
	return "tables"
}

// CanTransition reports whether the table may move to the given status
func (t *Table) CanTransition(to string) bool {
	for _, next := range statusTransitions[t.Status] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the table to the given status, rejecting moves the
// transition table does not allow.
func (t *Table) Transition(to string) error {
	if !ValidStatus(to) {
		return fmt.Errorf("unknown table status %q", to)
	}
	if !t.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, t.Status, to)
	}
	t.Status = to
	return nil
}

// TableRepository defines the contract for table data access
type TableRepository interface {
	Create(table *Table) error
	FindByID(id uint) (*Table, error)
	FindByNumber(number int) (*Table, error)
	FindAll() ([]Table, error)
	FindByStatus(status string) ([]Table, error)
	Update(table *Table) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
}
