package query

import (
	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

// ListItemsQuery represents the query to list inventory items
type ListItemsQuery struct {
	Limit  int
	Offset int
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.InventoryRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.InventoryRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(q ListItemsQuery) ([]domain.InventoryItem, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return h.repo.FindAll(q.Limit, q.Offset)
}
