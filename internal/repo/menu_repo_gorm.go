package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"burgerhouse/internal/domain"
)

type MenuRepo struct{ db *gorm.DB }

func NewMenuRepo(db *gorm.DB) *MenuRepo { return &MenuRepo{db: db} }

// Create inserts the menu row and its join rows in one go.
func (r *MenuRepo) Create(m *domain.Menu) error { return r.db.Create(m).Error }

func (r *MenuRepo) FindByID(id uint) (*domain.Menu, error) {
	var m domain.Menu
	err := r.db.
		Preload("Burgers").
		Preload("Complements").
		First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &m, err
}

func (r *MenuRepo) ListActive() ([]domain.Menu, error) {
	var ms []domain.Menu
	err := r.db.
		Preload("Burgers").
		Preload("Complements").
		Where("archived = ?", false).
		Find(&ms).Error
	return ms, err
}

// Save writes the menu's own columns; associations are managed explicitly
// through the Replace methods.
func (r *MenuRepo) Save(m *domain.Menu) error {
	return r.db.Omit(clause.Associations).Save(m).Error
}

func (r *MenuRepo) Archive(id uint) error {
	return r.db.Model(&domain.Menu{}).Where("id = ?", id).Update("archived", true).Error
}

func (r *MenuRepo) ReplaceBurgers(m *domain.Menu, burgers []domain.Burger) error {
	if err := r.db.Model(m).Association("Burgers").Replace(&burgers); err != nil {
		return err
	}
	m.Burgers = burgers
	return nil
}

func (r *MenuRepo) ReplaceComplements(m *domain.Menu, complements []domain.Complement) error {
	if err := r.db.Model(m).Association("Complements").Replace(&complements); err != nil {
		return err
	}
	m.Complements = complements
	return nil
}
