package repository

import (
	"github.com/dhaba/restaurant-pos/internal/table/domain"
	"gorm.io/gorm"
)

type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Table{})
}

func (r *GormTableRepository) Create(table *domain.Table) error {
	return r.db.Create(table).Error
}

func (r *GormTableRepository) FindByID(id uint) (*domain.Table, error) {
	var table domain.Table
	err := r.db.First(&table, id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *GormTableRepository) FindByNumber(number int) (*domain.Table, error) {
	var table domain.Table
	err := r.db.Where("number = ?", number).First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *GormTableRepository) FindAll() ([]domain.Table, error) {
	var tables []domain.Table
	err := r.db.Order("number").Find(&tables).Error
	return tables, err
}

func (r *GormTableRepository) FindByStatus(status string) ([]domain.Table, error) {
	var tables []domain.Table
	err := r.db.Where("status = ?", status).Order("number").Find(&tables).Error
	return tables, err
}

func (r *GormTableRepository) Update(table *domain.Table) error {
	return r.db.Save(table).Error
}

func (r *GormTableRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Table{}, id).Error
}

func (r *GormTableRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Table{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
