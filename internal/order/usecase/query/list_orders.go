package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/domain"
)

// ListOrdersQuery lists orders, optionally filtered by status
type ListOrdersQuery struct {
	Status string
	Limit  int
	Offset int
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.Order, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	if query.Status != "" {
		if !domain.ValidStatus(query.Status) {
			return nil, fmt.Errorf("invalid status: %s", query.Status)
		}
		orders, err := h.repo.FindByStatus(query.Status, query.Limit, query.Offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}
		return orders, nil
	}

	orders, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
