package repository

import (
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/customer/domain"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{})
}

func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	return r.db.Create(customer).Error
}

func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindByPhone(phone string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.Where("phone = ?", phone).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.Limit(limit).Offset(offset).Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	return r.db.Save(customer).Error
}

func (r *GormCustomerRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Customer{}, id).Error
}
