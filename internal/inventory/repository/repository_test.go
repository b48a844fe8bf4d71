package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

func getTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.InventoryItem{}))
	return db
}

func TestAdjustQuantityAppliesSignedDelta(t *testing.T) {
	repo := NewGormInventoryRepository(getTestDB(t))
	item := &domain.InventoryItem{Name: "Basmati Rice", Quantity: 25, Unit: "kg", MinThreshold: 5}
	require.NoError(t, repo.Create(item))

	updated, err := repo.AdjustQuantity(item.ID, -10)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, updated.Quantity, 0.001)

	updated, err = repo.AdjustQuantity(item.ID, 30)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, updated.Quantity, 0.001)
}

func TestAdjustQuantityAllowsNegativeStock(t *testing.T) {
	repo := NewGormInventoryRepository(getTestDB(t))
	item := &domain.InventoryItem{Name: "Paneer", Quantity: 2, Unit: "kg"}
	require.NoError(t, repo.Create(item))

	updated, err := repo.AdjustQuantity(item.ID, -5)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, updated.Quantity, 0.001)
}

func TestFindLowStockIncludesThresholdBoundary(t *testing.T) {
	repo := NewGormInventoryRepository(getTestDB(t))
	require.NoError(t, repo.Create(&domain.InventoryItem{Name: "Ghee", Quantity: 5, MinThreshold: 5}))
	require.NoError(t, repo.Create(&domain.InventoryItem{Name: "Atta", Quantity: 6, MinThreshold: 5}))
	require.NoError(t, repo.Create(&domain.InventoryItem{Name: "Chillies", Quantity: 0.5, MinThreshold: 1}))

	low, err := repo.FindLowStock()
	require.NoError(t, err)
	require.Len(t, low, 2)

	names := []string{low[0].Name, low[1].Name}
	assert.Contains(t, names, "Ghee")
	assert.Contains(t, names, "Chillies")
}

func TestIsLowStockAtExactThreshold(t *testing.T) {
	item := domain.InventoryItem{Quantity: 5, MinThreshold: 5}
	assert.True(t, item.IsLowStock())

	item.Quantity = 5.01
	assert.False(t, item.IsLowStock())
}
