package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesSameMenuItem(t *testing.T) {
	s := NewStore()

	c := s.AddItem("t1", 7, "Paneer Tikka", 280)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, 280.0, c.Lines[0].Subtotal)

	c = s.AddItem("t1", 7, "Paneer Tikka", 280)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 560.0, c.Lines[0].Subtotal)

	c = s.AddItem("t1", 9, "Garlic Naan", 60)
	assert.Len(t, c.Lines, 2)
	assert.Equal(t, 620.0, c.Subtotal())
}

func TestUpdateQuantityRecalculatesSubtotal(t *testing.T) {
	s := NewStore()
	c := s.AddItem("t1", 7, "Paneer Tikka", 280)
	lineID := c.Lines[0].ID

	c, err := s.UpdateQuantity("t1", lineID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Lines[0].Quantity)
	assert.Equal(t, 1120.0, c.Lines[0].Subtotal)
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	s := NewStore()
	c := s.AddItem("t1", 7, "Paneer Tikka", 280)
	lineID := c.Lines[0].ID

	c, err := s.UpdateQuantity("t1", lineID, 0)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	c = s.AddItem("t1", 7, "Paneer Tikka", 280)
	lineID = c.Lines[0].ID
	c, err = s.UpdateQuantity("t1", lineID, -3)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	s := NewStore()
	s.AddItem("t1", 7, "Paneer Tikka", 280)

	_, err := s.UpdateQuantity("t1", "nope", 2)
	assert.Error(t, err)
}

func TestRemoveLineIsIdempotent(t *testing.T) {
	s := NewStore()
	c := s.AddItem("t1", 7, "Paneer Tikka", 280)
	lineID := c.Lines[0].ID

	c = s.RemoveLine("t1", lineID)
	assert.Empty(t, c.Lines)

	c = s.RemoveLine("t1", lineID)
	assert.Empty(t, c.Lines)
}

func TestClearDropsCart(t *testing.T) {
	s := NewStore()
	s.AddItem("t1", 7, "Paneer Tikka", 280)
	s.Clear("t1")

	assert.Empty(t, s.Get("t1").Lines)
}

func TestSnapshotDoesNotAliasStoreState(t *testing.T) {
	s := NewStore()
	before := s.AddItem("t1", 7, "Paneer Tikka", 280)

	// A second terminal mutating the same cart must not show through
	// an already-taken snapshot
	s.AddItem("t1", 7, "Paneer Tikka", 280)
	assert.Equal(t, 1, before.Lines[0].Quantity)
	assert.Equal(t, 280.0, before.Lines[0].Subtotal)

	// Nor may writes to a snapshot reach the store
	before.Lines[0].Quantity = 99
	assert.Equal(t, 2, s.Get("t1").Lines[0].Quantity)
}

func TestConcurrentMutationsOnOneCart(t *testing.T) {
	s := NewStore()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			s.AddItem("t1", 7, "Paneer Tikka", 280)
		}
	}()
	for i := 0; i < 200; i++ {
		c := s.Get("t1")
		if len(c.Lines) > 0 {
			_ = c.Lines[0].Subtotal
		}
	}
	<-done

	c := s.Get("t1")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 200, c.Lines[0].Quantity)
}

func TestCartsAreIsolatedByID(t *testing.T) {
	s := NewStore()
	s.AddItem("t1", 7, "Paneer Tikka", 280)
	s.AddItem("t2", 9, "Garlic Naan", 60)

	assert.Len(t, s.Get("t1").Lines, 1)
	assert.Len(t, s.Get("t2").Lines, 1)
	assert.Equal(t, uint(7), s.Get("t1").Lines[0].MenuItemID)
	assert.Equal(t, uint(9), s.Get("t2").Lines[0].MenuItemID)
}
