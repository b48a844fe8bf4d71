package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
)

// GetItemQuery represents the query to get a menu item by ID
type GetItemQuery struct {
	ID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.MenuRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.MenuRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(query GetItemQuery) (*domain.MenuItem, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("item id is required")
	}

	item, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("menu item not found: %w", err)
	}

	return item, nil
}
