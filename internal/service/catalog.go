package service

import (
	"context"

	"burgerhouse/internal/core/cache"
	"burgerhouse/internal/domain"
)

// Catalog item services. Burgers and complements share the same contract:
// list active, create, partial update with full re-validation, idempotent
// archive. Updates and archives invalidate the cached menu listing because
// menus embed member names and prices.

type BurgerInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
}

type BurgerPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
}

type BurgerService struct {
	burgers domain.BurgerRepository
	cache   *cache.Cache
}

func NewBurgerService(burgers domain.BurgerRepository, c *cache.Cache) *BurgerService {
	return &BurgerService{burgers: burgers, cache: c}
}

func (s *BurgerService) ListActive() ([]domain.Burger, error) {
	return s.burgers.ListActive()
}

func (s *BurgerService) Create(in BurgerInput) (*domain.Burger, error) {
	b := &domain.Burger{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Archived:    false,
	}
	if err := checkStruct(b); err != nil {
		return nil, err
	}
	if err := s.burgers.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BurgerService) Update(ctx context.Context, id uint, patch BurgerPatch) (*domain.Burger, error) {
	b, err := s.burgers.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFoundf("burger not found")
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.Price != nil {
		b.Price = *patch.Price
	}
	if patch.Image != nil {
		b.Image = *patch.Image
	}
	if err := checkStruct(b); err != nil {
		return nil, err
	}
	if err := s.burgers.Save(b); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, activeMenusKey)
	return b, nil
}

func (s *BurgerService) Archive(ctx context.Context, id uint) error {
	b, err := s.burgers.FindByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return notFoundf("burger not found")
	}
	if err := s.burgers.Archive(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, activeMenusKey)
	return nil
}

type ComplementInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Type        string
}

type ComplementPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Type        *string
}

type ComplementService struct {
	complements domain.ComplementRepository
	cache       *cache.Cache
}

func NewComplementService(complements domain.ComplementRepository, c *cache.Cache) *ComplementService {
	return &ComplementService{complements: complements, cache: c}
}

func (s *ComplementService) ListActive() ([]domain.Complement, error) {
	return s.complements.ListActive()
}

func (s *ComplementService) Create(in ComplementInput) (*domain.Complement, error) {
	c := &domain.Complement{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Type:        in.Type,
		Archived:    false,
	}
	if err := checkStruct(c); err != nil {
		return nil, err
	}
	if err := s.complements.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ComplementService) Update(ctx context.Context, id uint, patch ComplementPatch) (*domain.Complement, error) {
	c, err := s.complements.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFoundf("complement not found")
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Price != nil {
		c.Price = *patch.Price
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if err := checkStruct(c); err != nil {
		return nil, err
	}
	if err := s.complements.Save(c); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, activeMenusKey)
	return c, nil
}

func (s *ComplementService) Archive(ctx context.Context, id uint) error {
	c, err := s.complements.FindByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return notFoundf("complement not found")
	}
	if err := s.complements.Archive(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, activeMenusKey)
	return nil
}
