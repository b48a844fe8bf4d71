package command

import (
	"fmt"

	menudomain "github.com/dhaba/restaurant-pos/internal/menu/domain"
	"github.com/dhaba/restaurant-pos/internal/order/cart"
)

// AddItemCommand adds one unit of a menu item to a cart
type AddItemCommand struct {
	CartID     string
	MenuItemID uint
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	carts *cart.Store
	menu  menudomain.MenuRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts *cart.Store, menu menudomain.MenuRepository) *AddItemHandler {
	return &AddItemHandler{carts: carts, menu: menu}
}

// Handle executes the add item command. Name and price are resolved from
// the menu here and frozen into the cart line.
func (h *AddItemHandler) Handle(cmd AddItemCommand) (cart.Cart, error) {
	if cmd.CartID == "" {
		return cart.Cart{}, fmt.Errorf("cart id is required")
	}
	if cmd.MenuItemID == 0 {
		return cart.Cart{}, fmt.Errorf("menu item id is required")
	}

	item, err := h.menu.FindByID(cmd.MenuItemID)
	if err != nil {
		return cart.Cart{}, fmt.Errorf("menu item not found: %w", err)
	}
	if !item.IsOrderable() {
		return cart.Cart{}, fmt.Errorf("menu item %q is not available", item.Name)
	}

	return h.carts.AddItem(cmd.CartID, item.ID, item.Name, item.Price), nil
}
