package repository

import (
	"github.com/dhaba/restaurant-pos/internal/menu/domain"
	"gorm.io/gorm"
)

type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.MenuItem{})
}

func (r *GormMenuRepository) Create(item *domain.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *GormMenuRepository) FindByID(id uint) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormMenuRepository) FindAll(limit, offset int) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormMenuRepository) FindByCategory(category string, limit, offset int) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.Where("category = ?", category).Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormMenuRepository) FindSpecials() ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.Where("is_special = ? AND available = ?", true, true).Find(&items).Error
	return items, err
}

func (r *GormMenuRepository) Update(item *domain.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *GormMenuRepository) Delete(id uint) error {
	return r.db.Delete(&domain.MenuItem{}, id).Error
}

func (r *GormMenuRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.MenuItem{}).Count(&count).Error
	return count, err
}

func (r *GormMenuRepository) SetAvailability(id uint, available bool) error {
	return r.db.Model(&domain.MenuItem{}).Where("id = ?", id).Update("available", available).Error
}
