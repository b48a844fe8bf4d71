package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/cart"
)

// UpdateQuantityCommand sets a cart line's quantity. Zero or a negative
// quantity removes the line.
type UpdateQuantityCommand struct {
	CartID   string
	LineID   string
	Quantity int
}

// UpdateQuantityHandler handles update quantity command
type UpdateQuantityHandler struct {
	carts *cart.Store
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(carts *cart.Store) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{carts: carts}
}

// Handle executes the update quantity command
func (h *UpdateQuantityHandler) Handle(cmd UpdateQuantityCommand) (cart.Cart, error) {
	if cmd.CartID == "" {
		return cart.Cart{}, fmt.Errorf("cart id is required")
	}
	if cmd.LineID == "" {
		return cart.Cart{}, fmt.Errorf("line id is required")
	}

	return h.carts.UpdateQuantity(cmd.CartID, cmd.LineID, cmd.Quantity)
}
