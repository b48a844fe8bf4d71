package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/cart"
)

// RemoveItemCommand deletes a cart line unconditionally
type RemoveItemCommand struct {
	CartID string
	LineID string
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	carts *cart.Store
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts *cart.Store) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command. Removing a line that does not
// exist is a no-op.
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) (cart.Cart, error) {
	if cmd.CartID == "" {
		return cart.Cart{}, fmt.Errorf("cart id is required")
	}

	return h.carts.RemoveLine(cmd.CartID, cmd.LineID), nil
}
