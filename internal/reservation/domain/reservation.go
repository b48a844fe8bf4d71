package domain

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a known reservation status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Reservation represents a booked table slot
type Reservation struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	CustomerName  string         `json:"customer_name" gorm:"not null"`
	CustomerPhone string         `json:"customer_phone" gorm:"not null;index"`
	TableNumber   int            `json:"table_number" gorm:"not null;index"`
	Date          string         `json:"date" gorm:"not null;index"` // YYYY-MM-DD
	Time          string         `json:"time" gorm:"not null"`       // HH:MM
	PartySize     int            `json:"party_size" gorm:"not null;default:2"`
	Status        string         `json:"status" gorm:"not null;default:'pending'"`
	Notes         string         `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Reservation) TableName() string {
	return "reservations"
}

// ReservationRepository defines the contract for reservation data access
type ReservationRepository interface {
	Create(reservation *Reservation) error
	FindByID(id uint) (*Reservation, error)
	FindByDate(date string) ([]Reservation, error)
	FindByStatus(status string) ([]Reservation, error)
	FindAll(limit, offset int) ([]Reservation, error)
	Update(reservation *Reservation) error
	Delete(id uint) error
}

// TableMarker flips table status as reservations are confirmed and
// cancelled.
type TableMarker interface {
	MarkReserved(tableNumber int, customerName string) error
	MarkAvailableIfReserved(tableNumber int) error
}
