package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MenuItem represents a dish on the restaurant menu
type MenuItem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Category    string         `json:"category" gorm:"index"`
	Price       float64        `json:"price" gorm:"not null"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	Available   bool           `json:"available" gorm:"default:true"`
	IsSpecial   bool           `json:"is_special" gorm:"default:false"`
	PrepMinutes int            `json:"prep_minutes"`
	Allergens   pq.StringArray `json:"allergens" gorm:"type:text[]"`
	DietaryTags pq.StringArray `json:"dietary_tags" gorm:"type:text[]"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (MenuItem) TableName() string {
	return "menu_items"
}

// IsOrderable checks if the item can be added to a cart
func (m *MenuItem) IsOrderable() bool {
	return m.Available
}

// MenuRepository defines the contract for menu data access
type MenuRepository interface {
	Create(item *MenuItem) error
	FindByID(id uint) (*MenuItem, error)
	FindAll(limit, offset int) ([]MenuItem, error)
	FindByCategory(category string, limit, offset int) ([]MenuItem, error)
	FindSpecials() ([]MenuItem, error)
	Update(item *MenuItem) error
	Delete(id uint) error
	Count() (int64, error)
	SetAvailability(id uint, available bool) error
}
