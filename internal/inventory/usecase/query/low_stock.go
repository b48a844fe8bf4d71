package query

import (
	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

// LowStockQuery represents the query for items at or below their
// reorder level
type LowStockQuery struct{}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	repo domain.InventoryRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.InventoryRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(LowStockQuery) ([]domain.InventoryItem, error) {
	return h.repo.FindLowStock()
}
