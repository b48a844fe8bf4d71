package command

import (
	"fmt"
	"time"

	"github.com/dhaba/restaurant-pos/internal/reservation/domain"
)

// CreateReservationCommand represents the intent to book a table slot
type CreateReservationCommand struct {
	CustomerName  string
	CustomerPhone string
	TableNumber   int
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	PartySize     int
	Notes         string
}

// CreateReservationHandler handles create reservation command
type CreateReservationHandler struct {
	repo domain.ReservationRepository
}

// NewCreateReservationHandler creates a new create reservation handler
func NewCreateReservationHandler(repo domain.ReservationRepository) *CreateReservationHandler {
	return &CreateReservationHandler{repo: repo}
}

// Handle executes the create reservation command. New bookings start
// pending; the table is only held on confirmation.
func (h *CreateReservationHandler) Handle(cmd CreateReservationCommand) (*domain.Reservation, error) {
	if cmd.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if cmd.CustomerPhone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}
	if cmd.TableNumber <= 0 {
		return nil, fmt.Errorf("table number is required")
	}
	if _, err := time.Parse("2006-01-02", cmd.Date); err != nil {
		return nil, fmt.Errorf("invalid date, want YYYY-MM-DD: %w", err)
	}
	if _, err := time.Parse("15:04", cmd.Time); err != nil {
		return nil, fmt.Errorf("invalid time, want HH:MM: %w", err)
	}
	if cmd.PartySize <= 0 {
		cmd.PartySize = 2
	}

	reservation := &domain.Reservation{
		CustomerName:  cmd.CustomerName,
		CustomerPhone: cmd.CustomerPhone,
		TableNumber:   cmd.TableNumber,
		Date:          cmd.Date,
		Time:          cmd.Time,
		PartySize:     cmd.PartySize,
		Status:        domain.StatusPending,
		Notes:         cmd.Notes,
	}

	if err := h.repo.Create(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}
