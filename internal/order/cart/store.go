package cart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Line is an in-progress cart line. Subtotal is kept in step with
// Quantity × UnitPrice on every mutation.
type Line struct {
	ID         string  `json:"id"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// Cart is an unsubmitted order being built at a terminal
type Cart struct {
	ID    string `json:"id"`
	Lines []Line `json:"lines"`
}

// Subtotal sums the line subtotals
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.Lines {
		sum += line.Subtotal
	}
	return sum
}

// Store holds carts in memory, keyed by cart id (one per terminal or
// session). The source system kept this state client-side; here it lives
// behind the API so every terminal sees the same cart.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns a snapshot of the cart, creating it if absent
func (s *Store) Get(cartID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.getLocked(cartID))
}

// AddItem adds one unit of a menu item to the cart. A line already holding
// the same menu item has its quantity incremented instead of a new line
// being appended.
func (s *Store) AddItem(cartID string, menuItemID uint, name string, price float64) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(cartID)
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines[i].Quantity++
			c.Lines[i].Subtotal = float64(c.Lines[i].Quantity) * c.Lines[i].UnitPrice
			return snapshot(c)
		}
	}

	c.Lines = append(c.Lines, Line{
		ID:         uuid.New().String(),
		MenuItemID: menuItemID,
		Name:       name,
		UnitPrice:  price,
		Quantity:   1,
		Subtotal:   price,
	})
	return snapshot(c)
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less
// removes the line.
func (s *Store) UpdateQuantity(cartID, lineID string, quantity int) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(cartID)
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			if quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = quantity
				c.Lines[i].Subtotal = float64(quantity) * c.Lines[i].UnitPrice
			}
			return snapshot(c), nil
		}
	}
	return snapshot(c), fmt.Errorf("line %s not found in cart", lineID)
}

// RemoveLine deletes a line unconditionally; removing an unknown line is
// a no-op.
func (s *Store) RemoveLine(cartID, lineID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(cartID)
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			break
		}
	}
	return snapshot(c)
}

// Clear empties the cart
func (s *Store) Clear(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
}

func (s *Store) getLocked(cartID string) *Cart {
	c, ok := s.carts[cartID]
	if !ok {
		c = &Cart{ID: cartID}
		s.carts[cartID] = c
	}
	return c
}

// snapshot copies the cart with its own lines slice, so callers never
// share backing storage with the cart held under the lock.
func snapshot(c *Cart) Cart {
	out := Cart{ID: c.ID}
	if len(c.Lines) > 0 {
		out.Lines = make([]Line, len(c.Lines))
		copy(out.Lines, c.Lines)
	}
	return out
}
