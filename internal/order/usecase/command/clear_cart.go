package command

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/cart"
)

// ClearCartCommand empties a cart without touching submitted orders
type ClearCartCommand struct {
	CartID string
}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	carts *cart.Store
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts *cart.Store) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(cmd ClearCartCommand) error {
	if cmd.CartID == "" {
		return fmt.Errorf("cart id is required")
	}

	h.carts.Clear(cmd.CartID)
	return nil
}
