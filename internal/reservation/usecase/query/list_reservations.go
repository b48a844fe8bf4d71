package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/reservation/domain"
)

// ListReservationsQuery represents the query to list reservations,
// optionally narrowed to a date or status
type ListReservationsQuery struct {
	Date   string
	Status string
	Limit  int
	Offset int
}

// ListReservationsHandler handles list reservations query
type ListReservationsHandler struct {
	repo domain.ReservationRepository
}

// NewListReservationsHandler creates a new list reservations handler
func NewListReservationsHandler(repo domain.ReservationRepository) *ListReservationsHandler {
	return &ListReservationsHandler{repo: repo}
}

// Handle executes the list reservations query
func (h *ListReservationsHandler) Handle(q ListReservationsQuery) ([]domain.Reservation, error) {
	if q.Date != "" {
		return h.repo.FindByDate(q.Date)
	}
	if q.Status != "" {
		if !domain.ValidStatus(q.Status) {
			return nil, fmt.Errorf("invalid reservation status: %s", q.Status)
		}
		return h.repo.FindByStatus(q.Status)
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return h.repo.FindAll(q.Limit, q.Offset)
}
