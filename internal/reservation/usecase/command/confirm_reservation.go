package command

import (
	"context"
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/reservation/domain"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// ConfirmReservationCommand confirms a pending booking and holds the
// table
type ConfirmReservationCommand struct {
	ReservationID uint
}

// ConfirmReservationHandler handles confirm reservation command
type ConfirmReservationHandler struct {
	repo   domain.ReservationRepository
	tables domain.TableMarker
}

// NewConfirmReservationHandler creates a new confirm reservation handler
func NewConfirmReservationHandler(repo domain.ReservationRepository, tables domain.TableMarker) *ConfirmReservationHandler {
	return &ConfirmReservationHandler{repo: repo, tables: tables}
}

// Handle executes the confirm reservation command
func (h *ConfirmReservationHandler) Handle(ctx context.Context, cmd ConfirmReservationCommand) (*domain.Reservation, error) {
	reservation, err := h.repo.FindByID(cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("cannot confirm cancelled reservation %d", reservation.ID)
	}
	if reservation.Status == domain.StatusConfirmed {
		return reservation, nil
	}

	if err := h.tables.MarkReserved(reservation.TableNumber, reservation.CustomerName); err != nil {
		return nil, fmt.Errorf("failed to hold table %d: %w", reservation.TableNumber, err)
	}

	reservation.Status = domain.StatusConfirmed
	if err := h.repo.Update(reservation); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("reservation_id", reservation.ID).
		Int("table_number", reservation.TableNumber).
		Msg("Reservation confirmed")
	return reservation, nil
}
