package query

import (
	"fmt"

	"github.com/dhaba/restaurant-pos/internal/order/cart"
)

// GetCartQuery returns the current state of a terminal's cart
type GetCartQuery struct {
	CartID string
}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	carts *cart.Store
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts *cart.Store) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(query GetCartQuery) (cart.Cart, error) {
	if query.CartID == "" {
		return cart.Cart{}, fmt.Errorf("cart id is required")
	}

	return h.carts.Get(query.CartID), nil
}
