package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
)

// ListItemsQuery represents the query to list menu items
type ListItemsQuery struct {
	Category string
	Limit    int
	Offset   int
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.MenuRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.MenuRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(query ListItemsQuery) ([]domain.MenuItem, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var (
		items []domain.MenuItem
		err   error
	)
	if query.Category != "" {
		items, err = h.repo.FindByCategory(query.Category, query.Limit, query.Offset)
	} else {
		items, err = h.repo.FindAll(query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return items, nil
}
