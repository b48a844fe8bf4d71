package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
)

// CreateItemCommand represents the command to add a dish to the menu
type CreateItemCommand struct {
	Name        string
	Category    string
	Price       float64
	Description string
	ImageURL    string
	IsSpecial   bool
	PrepMinutes int
	Allergens   []string
	DietaryTags []string
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo domain.MenuRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.MenuRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.MenuItem, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than 0")
	}

	item := &domain.MenuItem{
		Name:        cmd.Name,
		Category:    cmd.Category,
		Price:       cmd.Price,
		Description: cmd.Description,
		ImageURL:    cmd.ImageURL,
		Available:   true,
		IsSpecial:   cmd.IsSpecial,
		PrepMinutes: cmd.PrepMinutes,
		Allergens:   cmd.Allergens,
		DietaryTags: cmd.DietaryTags,
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return item, nil
}
