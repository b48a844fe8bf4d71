package query

import (
	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

// GetItemQuery represents the query to fetch one inventory item
type GetItemQuery struct {
	ID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.InventoryRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.InventoryRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(q GetItemQuery) (*domain.InventoryItem, error) {
	return h.repo.FindByID(q.ID)
}
