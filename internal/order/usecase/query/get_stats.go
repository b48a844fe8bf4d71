package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/domain"
)

// GetStatsQuery represents the query for dashboard order counters
type GetStatsQuery struct{}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.OrderRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.OrderRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*domain.OrderStats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	pending, err := h.repo.CountByStatus(domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	completed, err := h.repo.CountByStatus(domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}

	return &domain.OrderStats{
		TotalOrders:     total,
		PendingOrders:   pending,
		CompletedOrders: completed,
	}, nil
}
