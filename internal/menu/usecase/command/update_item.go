package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
)

// UpdateItemCommand represents the command to edit a menu item
type UpdateItemCommand struct {
	ID          uint
	Name        string
	Category    string
	Price       float64
	Description string
	ImageURL    string
	IsSpecial   *bool
	PrepMinutes int
	Allergens   []string
	DietaryTags []string
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo domain.MenuRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.MenuRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.MenuItem, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("item id is required")
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("menu item not found: %w", err)
	}

	if cmd.Name != "" {
		item.Name = cmd.Name
	}
	if cmd.Category != "" {
		item.Category = cmd.Category
	}
	if cmd.Price > 0 {
		item.Price = cmd.Price
	}
	if cmd.Description != "" {
		item.Description = cmd.Description
	}
	if cmd.ImageURL != "" {
		item.ImageURL = cmd.ImageURL
	}
	if cmd.IsSpecial != nil {
		item.IsSpecial = *cmd.IsSpecial
	}
	if cmd.PrepMinutes > 0 {
		item.PrepMinutes = cmd.PrepMinutes
	}
	if cmd.Allergens != nil {
		item.Allergens = cmd.Allergens
	}
	if cmd.DietaryTags != nil {
		item.DietaryTags = cmd.DietaryTags
	}

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return item, nil
}
