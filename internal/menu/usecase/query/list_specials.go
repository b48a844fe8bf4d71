package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
)

// ListSpecialsQuery returns today's specials (available items flagged special)
type ListSpecialsQuery struct{}

// ListSpecialsHandler handles list specials query
type ListSpecialsHandler struct {
	repo domain.MenuRepository
}

// NewListSpecialsHandler creates a new list specials handler
func NewListSpecialsHandler(repo domain.MenuRepository) *ListSpecialsHandler {
	return &ListSpecialsHandler{repo: repo}
}

// Handle executes the list specials query
func (h *ListSpecialsHandler) Handle(query ListSpecialsQuery) ([]domain.MenuItem, error) {
	items, err := h.repo.FindSpecials()
	if err != nil {
		return nil, fmt.Errorf("failed to list specials: %w", err)
	}
	return items, nil
}
