package service

import (
	"context"
	"time"

	"burgerhouse/internal/core/cache"
	"burgerhouse/internal/domain"
)

const (
	activeMenusKey = "menus:active"
	activeMenusTTL = 30 * time.Second
)

type MenuInput struct {
	Name          string
	Description   string
	Image         string
	BurgerIDs     []uint
	ComplementIDs []uint
}

// MenuPatch carries only the fields present in the request. A non-nil id
// list replaces the whole corresponding membership set.
type MenuPatch struct {
	Name          *string
	Description   *string
	Image         *string
	BurgerIDs     *[]uint
	ComplementIDs *[]uint
}

type MemberRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type MemberPrice struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PriceBreakdown is recomputed from the menu's current members on every
// call. It is never reconciled with the stored price.
type PriceBreakdown struct {
	Menu                MemberRef     `json:"menu"`
	Burgers             []MemberPrice `json:"burgers"`
	Complements         []MemberPrice `json:"complements"`
	TotalBeforeDiscount float64       `json:"totalBeforeDiscount"`
	Discount            float64       `json:"discount"`
	DiscountPercentage  string        `json:"discountPercentage"`
	FinalPrice          float64       `json:"finalPrice"`
}

type MenuService struct {
	menus       domain.MenuRepository
	burgers     domain.BurgerRepository
	complements domain.ComplementRepository
	cache       *cache.Cache
}

func NewMenuService(menus domain.MenuRepository, burgers domain.BurgerRepository, complements domain.ComplementRepository, c *cache.Cache) *MenuService {
	return &MenuService{menus: menus, burgers: burgers, complements: complements, cache: c}
}

func (s *MenuService) ListActive(ctx context.Context) ([]domain.Menu, error) {
	return cache.GetOrLoadJSON(s.cache, ctx, activeMenusKey, activeMenusTTL, func(context.Context) ([]domain.Menu, error) {
		return s.menus.ListActive()
	})
}

func (s *MenuService) Get(id uint) (*domain.Menu, error) {
	m, err := s.menus.FindByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFoundf("menu not found")
	}
	return m, nil
}

// Create resolves every referenced id fail-fast, prices the bundle with the
// fixed discount and persists the menu with its associations. Archived
// members still resolve; duplicate ids are absorbed.
func (s *MenuService) Create(ctx context.Context, in MenuInput) (*domain.Menu, error) {
	burgers, err := s.resolveBurgers(in.BurgerIDs)
	if err != nil {
		return nil, err
	}
	complements, err := s.resolveComplements(in.ComplementIDs)
	if err != nil {
		return nil, err
	}

	m := &domain.Menu{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       menuPrice(memberTotal(burgers, complements)),
		Archived:    false,
		Burgers:     burgers,
		Complements: complements,
	}
	if err := checkStruct(m); err != nil {
		return nil, err
	}
	if err := s.menus.Create(m); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, activeMenusKey)
	return m, nil
}

// Update overwrites the scalar fields present in the patch. When an id list
// is supplied the membership set is replaced wholesale and the price is
// recomputed from the resulting members; otherwise the stored price stands.
func (s *MenuService) Update(ctx context.Context, id uint, patch MenuPatch) (*domain.Menu, error) {
	m, err := s.menus.FindByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFoundf("menu not found")
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Image != nil {
		m.Image = *patch.Image
	}

	// Resolve both lists before any write so a bad id leaves the menu
	// untouched.
	var newBurgers []domain.Burger
	var newComplements []domain.Complement
	if patch.BurgerIDs != nil {
		if newBurgers, err = s.resolveBurgers(*patch.BurgerIDs); err != nil {
			return nil, err
		}
	}
	if patch.ComplementIDs != nil {
		if newComplements, err = s.resolveComplements(*patch.ComplementIDs); err != nil {
			return nil, err
		}
	}

	membersChanged := patch.BurgerIDs != nil || patch.ComplementIDs != nil
	if membersChanged {
		prospectiveBurgers := m.Burgers
		if patch.BurgerIDs != nil {
			prospectiveBurgers = newBurgers
		}
		prospectiveComplements := m.Complements
		if patch.ComplementIDs != nil {
			prospectiveComplements = newComplements
		}
		m.Price = menuPrice(memberTotal(prospectiveBurgers, prospectiveComplements))
	}

	if err := checkStruct(m); err != nil {
		return nil, err
	}

	if patch.BurgerIDs != nil {
		if err := s.menus.ReplaceBurgers(m, newBurgers); err != nil {
			return nil, err
		}
	}
	if patch.ComplementIDs != nil {
		if err := s.menus.ReplaceComplements(m, newComplements); err != nil {
			return nil, err
		}
	}
	if err := s.menus.Save(m); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, activeMenusKey)
	return m, nil
}

func (s *MenuService) Archive(ctx context.Context, id uint) error {
	m, err := s.menus.FindByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return notFoundf("menu not found")
	}
	if err := s.menus.Archive(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, activeMenusKey)
	return nil
}

func (s *MenuService) PriceBreakdown(id uint) (*PriceBreakdown, error) {
	m, err := s.menus.FindByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFoundf("menu not found")
	}

	out := &PriceBreakdown{
		Menu:        MemberRef{ID: m.ID, Name: m.Name},
		Burgers:     make([]MemberPrice, 0, len(m.Burgers)),
		Complements: make([]MemberPrice, 0, len(m.Complements)),
	}
	var total float64
	for _, b := range m.Burgers {
		out.Burgers = append(out.Burgers, MemberPrice{ID: b.ID, Name: b.Name, Price: b.Price})
		total += b.Price
	}
	for _, c := range m.Complements {
		out.Complements = append(out.Complements, MemberPrice{ID: c.ID, Name: c.Name, Price: c.Price})
		total += c.Price
	}
	out.TotalBeforeDiscount = round2(total)
	out.Discount = round2(total * DiscountRate)
	out.DiscountPercentage = "10%"
	out.FinalPrice = menuPrice(total)
	return out, nil
}

func (s *MenuService) resolveBurgers(ids []uint) ([]domain.Burger, error) {
	out := make([]domain.Burger, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		b, err := s.burgers.FindByID(id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, badRequestf("burger with id %d not found", id)
		}
		out = append(out, *b)
	}
	return out, nil
}

func (s *MenuService) resolveComplements(ids []uint) ([]domain.Complement, error) {
	out := make([]domain.Complement, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		c, err := s.complements.FindByID(id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, badRequestf("complement with id %d not found", id)
		}
		out = append(out, *c)
	}
	return out, nil
}
