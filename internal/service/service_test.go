package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"burgerhouse/internal/core/database"
	"burgerhouse/internal/domain"
	"burgerhouse/internal/repo"
	"burgerhouse/internal/service"
)

// newTestDB opens an in-memory sqlite database. One connection only, so
// every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:             "sqlite",
		DSN:                ":memory:",
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		ConnMaxLifetimeMin: 30,
		LogLevel:           "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Burger{},
		&domain.Complement{},
		&domain.Menu{},
		&domain.User{},
	))
	return db
}

type fixture struct {
	burgers     *service.BurgerService
	complements *service.ComplementService
	menus       *service.MenuService
	users       *service.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	burgerRepo := repo.NewBurgerRepo(db)
	complementRepo := repo.NewComplementRepo(db)
	menuRepo := repo.NewMenuRepo(db)
	userRepo := repo.NewUserRepo(db)
	return &fixture{
		burgers:     service.NewBurgerService(burgerRepo, nil),
		complements: service.NewComplementService(complementRepo, nil),
		menus:       service.NewMenuService(menuRepo, burgerRepo, complementRepo, nil),
		users:       service.NewUserService(userRepo),
	}
}

func (f *fixture) mustBurger(t *testing.T, name string, price float64) *domain.Burger {
	t.Helper()
	b, err := f.burgers.Create(service.BurgerInput{Name: name, Price: price})
	require.NoError(t, err)
	return b
}

func (f *fixture) mustComplement(t *testing.T, name, typ string, price float64) *domain.Complement {
	t.Helper()
	c, err := f.complements.Create(service.ComplementInput{Name: name, Price: price, Type: typ})
	require.NoError(t, err)
	return c
}
