package repository

import (
	"github.com/dhaba/restaurant-pos/internal/order/domain"
	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

// Create persists the order and its items in one transaction
func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByStatus(status string, limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").Where("status = ?", status).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) Update(order *domain.Order) error {
	return r.db.Omit("Items").Save(order).Error
}

func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// SumTotalByPaymentStatus sums order totals for a payment status.
// COALESCE keeps the result a number when no rows match.
func (r *GormOrderRepository) SumTotalByPaymentStatus(paymentStatus string) (float64, error) {
	var sum float64
	err := r.db.Model(&domain.Order{}).
		Where("payment_status = ?", paymentStatus).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}
