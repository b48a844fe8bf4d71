package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/inventory/domain"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.InventoryItem{})
}

func (r *GormInventoryRepository) Create(item *domain.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *GormInventoryRepository) FindByID(id uint) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindByName(name string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.Where("name = ?", name).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindAll(limit, offset int) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.Limit(limit).Offset(offset).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) FindLowStock() ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.Where("quantity <= min_threshold").Order("name ASC").Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) Update(item *domain.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *GormInventoryRepository) Delete(id uint) error {
	return r.db.Delete(&domain.InventoryItem{}, id).Error
}

// AdjustQuantity applies a signed delta inside a transaction and returns
// the updated row. Stock may go negative when usage outruns deliveries.
func (r *GormInventoryRepository) AdjustQuantity(id uint, delta float64) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return fmt.Errorf("inventory item not found: %w", err)
		}
		item.Quantity += delta
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
