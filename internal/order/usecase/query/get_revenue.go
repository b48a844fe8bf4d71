package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/domain"
)

// GetRevenueQuery represents the query for total collected revenue
type GetRevenueQuery struct{}

// RevenueResult sums orders whose payment status is paid. Unpaid and
// partially paid orders do not count.
type RevenueResult struct {
	TotalRevenue float64 `json:"total_revenue"`
}

// GetRevenueHandler handles get revenue query
type GetRevenueHandler struct {
	repo domain.OrderRepository
}

// NewGetRevenueHandler creates a new get revenue handler
func NewGetRevenueHandler(repo domain.OrderRepository) *GetRevenueHandler {
	return &GetRevenueHandler{repo: repo}
}

// Handle executes the get revenue query
func (h *GetRevenueHandler) Handle(query GetRevenueQuery) (*RevenueResult, error) {
	sum, err := h.repo.SumTotalByPaymentStatus(domain.PaymentPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &RevenueResult{TotalRevenue: sum}, nil
}
