package command

import (
	"context"
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/reservation/domain"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// CancelReservationCommand cancels a booking and reopens the table if
// it was held for this party
type CancelReservationCommand struct {
	ReservationID uint
}

// CancelReservationHandler handles cancel reservation command
type CancelReservationHandler struct {
	repo   domain.ReservationRepository
	tables domain.TableMarker
}

// NewCancelReservationHandler creates a new cancel reservation handler
func NewCancelReservationHandler(repo domain.ReservationRepository, tables domain.TableMarker) *CancelReservationHandler {
	return &CancelReservationHandler{repo: repo, tables: tables}
}

// Handle executes the cancel reservation command
func (h *CancelReservationHandler) Handle(ctx context.Context, cmd CancelReservationCommand) (*domain.Reservation, error) {
	reservation, err := h.repo.FindByID(cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status == domain.StatusCancelled {
		return reservation, nil
	}

	wasConfirmed := reservation.Status == domain.StatusConfirmed
	reservation.Status = domain.StatusCancelled
	if err := h.repo.Update(reservation); err != nil {
		return nil, err
	}

	if wasConfirmed {
		if err := h.tables.MarkAvailableIfReserved(reservation.TableNumber); err != nil {
			return nil, fmt.Errorf("failed to reopen table %d: %w", reservation.TableNumber, err)
		}
	}

	logger.Info(ctx).
		Uint("reservation_id", reservation.ID).
		Int("table_number", reservation.TableNumber).
		Msg("Reservation cancelled")
	return reservation, nil
}
