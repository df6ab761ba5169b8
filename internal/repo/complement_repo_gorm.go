package repo

import (
	"errors"

	"gorm.io/gorm"

	"burgerhouse/internal/domain"
)

type ComplementRepo struct{ db *gorm.DB }

func NewComplementRepo(db *gorm.DB) *ComplementRepo { return &ComplementRepo{db: db} }

func (r *ComplementRepo) Create(c *domain.Complement) error { return r.db.Create(c).Error }

func (r *ComplementRepo) FindByID(id uint) (*domain.Complement, error) {
	var c domain.Complement
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *ComplementRepo) ListActive() ([]domain.Complement, error) {
	var cs []domain.Complement
	err := r.db.Where("archived = ?", false).Find(&cs).Error
	return cs, err
}

func (r *ComplementRepo) Save(c *domain.Complement) error { return r.db.Save(c).Error }

func (r *ComplementRepo) Archive(id uint) error {
	return r.db.Model(&domain.Complement{}).Where("id = ?", id).Update("archived", true).Error
}
