package domain

import (
	"time"

	"gorm.io/gorm"
)

// InventoryItem represents a stocked ingredient or supply
type InventoryItem struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null;uniqueIndex"`
	Quantity     float64        `json:"quantity" gorm:"not null;default:0"`
	Unit         string         `json:"unit" gorm:"default:'kg'"`
	MinThreshold float64        `json:"min_threshold" gorm:"default:0"`
	MaxThreshold float64        `json:"max_threshold" gorm:"default:0"`
	CostPerUnit  float64        `json:"cost_per_unit"`
	Supplier     string         `json:"supplier"`
	ExpiryDate   *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the item has fallen to its reorder level
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinThreshold
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	Create(item *InventoryItem) error
	FindByID(id uint) (*InventoryItem, error)
	FindByName(name string) (*InventoryItem, error)
	FindAll(limit, offset int) ([]InventoryItem, error)
	FindLowStock() ([]InventoryItem, error)
	Update(item *InventoryItem) error
	Delete(id uint) error
	AdjustQuantity(id uint, delta float64) (*InventoryItem, error)
}
