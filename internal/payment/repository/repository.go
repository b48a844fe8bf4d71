package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/payment/domain"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Record inserts the payment and updates the daily collection bucket
// for the payment's date inside a single transaction. The bucket is
// created on first use.
func (r *GormPaymentRepository) Record(payment *domain.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		date := payment.CreatedAt.Format("2006-01-02")
		var collection domain.DailyCollection
		err := tx.Where("date = ?", date).First(&collection).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			collection = domain.DailyCollection{Date: date}
			collection.Add(payment.Method, payment.Amount)
			if err := tx.Create(&collection).Error; err != nil {
				return fmt.Errorf("failed to create daily collection: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load daily collection: %w", err)
		}

		collection.Add(payment.Method, payment.Amount)
		if err := tx.Save(&collection).Error; err != nil {
			return fmt.Errorf("failed to update daily collection: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a payment by ID
func (r *GormPaymentRepository) FindByID(id uint) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		return nil, fmt.Errorf("payment not found: %w", err)
	}
	return &payment, nil
}

// FindByOrderID retrieves all payments recorded against an order
func (r *GormPaymentRepository) FindByOrderID(orderID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := r.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// FindAll retrieves payments with pagination
func (r *GormPaymentRepository) FindAll(limit, offset int) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// SumByOrderID returns the total amount already tendered for an order
func (r *GormPaymentRepository) SumByOrderID(orderID uint) (float64, error) {
	var sum float64
	err := r.db.Model(&domain.Payment{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return sum, nil
}

// FindCollectionByDate retrieves the rollup for a single day
func (r *GormPaymentRepository) FindCollectionByDate(date string) (*domain.DailyCollection, error) {
	var collection domain.DailyCollection
	if err := r.db.Where("date = ?", date).First(&collection).Error; err != nil {
		return nil, fmt.Errorf("daily collection not found: %w", err)
	}
	return &collection, nil
}

// FindCollectionsSince retrieves rollups from the given date onward
func (r *GormPaymentRepository) FindCollectionsSince(date string) ([]domain.DailyCollection, error) {
	var collections []domain.DailyCollection
	if err := r.db.Where("date >= ?", date).Order("date DESC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to list daily collections: %w", err)
	}
	return collections, nil
}

// FindAllCollections retrieves every rollup, newest first
func (r *GormPaymentRepository) FindAllCollections() ([]domain.DailyCollection, error) {
	var collections []domain.DailyCollection
	if err := r.db.Order("date DESC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to list daily collections: %w", err)
	}
	return collections, nil
}

// AutoMigrate creates the payments and daily_collections tables
func (r *GormPaymentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Payment{}, &domain.DailyCollection{})
}
