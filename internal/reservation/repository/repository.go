package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/reservation/domain"
)

// GormReservationRepository implements ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GORM reservation repository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// AutoMigrate creates the reservations table
func (r *GormReservationRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Reservation{})
}

// Create persists a new reservation
func (r *GormReservationRepository) Create(reservation *domain.Reservation) error {
	if err := r.db.Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// FindByID retrieves a reservation by ID
func (r *GormReservationRepository) FindByID(id uint) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		return nil, fmt.Errorf("reservation not found: %w", err)
	}
	return &reservation, nil
}

// FindByDate retrieves reservations for a calendar day, earliest first
func (r *GormReservationRepository) FindByDate(date string) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := r.db.Where("date = ?", date).Order("time ASC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// FindByStatus retrieves reservations in a given status
func (r *GormReservationRepository) FindByStatus(status string) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := r.db.Where("status = ?", status).Order("date ASC, time ASC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// FindAll retrieves reservations with pagination, newest bookings first
func (r *GormReservationRepository) FindAll(limit, offset int) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// Update saves changes to an existing reservation
func (r *GormReservationRepository) Update(reservation *domain.Reservation) error {
	if err := r.db.Save(reservation).Error; err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	return nil
}

// Delete soft-deletes a reservation
func (r *GormReservationRepository) Delete(id uint) error {
	if err := r.db.Delete(&domain.Reservation{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}
