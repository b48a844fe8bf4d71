package domain

import (
	"time"

	"gorm.io/gorm"
)

// Customer is a directory entry for a repeat guest
type Customer struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"not null"`
	Phone      string         `json:"phone" gorm:"not null;uniqueIndex"`
	Email      string         `json:"email"`
	VisitCount int            `json:"visit_count" gorm:"default:0"`
	LastVisit  *time.Time     `json:"last_visit,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// RecordVisit bumps the visit counter
func (c *Customer) RecordVisit(at time.Time) {
	c.VisitCount++
	c.LastVisit = &at
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindByPhone(phone string) (*Customer, error)
	FindAll(limit, offset int) ([]Customer, error)
	Update(customer *Customer) error
	Delete(id uint) error
}
