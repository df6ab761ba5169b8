package repo

import (
	"errors"

	"gorm.io/gorm"

	"burgerhouse/internal/domain"
)

type BurgerRepo struct{ db *gorm.DB }

func NewBurgerRepo(db *gorm.DB) *BurgerRepo { return &BurgerRepo{db: db} }

func (r *BurgerRepo) Create(b *domain.Burger) error { return r.db.Create(b).Error }

func (r *BurgerRepo) FindByID(id uint) (*domain.Burger, error) {
	var b domain.Burger
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BurgerRepo) ListActive() ([]domain.Burger, error) {
	var bs []domain.Burger
	err := r.db.Where("archived = ?", false).Find(&bs).Error
	return bs, err
}

func (r *BurgerRepo) Save(b *domain.Burger) error { return r.db.Save(b).Error }

func (r *BurgerRepo) Archive(id uint) error {
	return r.db.Model(&domain.Burger{}).Where("id = ?", id).Update("archived", true).Error
}
