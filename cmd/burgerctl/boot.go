package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"burgerhouse/internal/core/config"
	"burgerhouse/internal/core/database"
	"burgerhouse/internal/domain"
	"burgerhouse/internal/repo"
	"burgerhouse/internal/service"
)

// app bundles everything a command needs after boot.
type app struct {
	burgers     *service.BurgerService
	complements *service.ComplementService
	menus       *service.MenuService
	users       *service.UserService
}

// boot loads config, opens the database and wires the services. Commands
// run without redis; the services fall back to direct reads.
func boot() (*app, error) {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           "silent",
	})
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.Burger{}, &domain.Complement{}, &domain.Menu{}, &domain.User{}); err != nil {
			return nil, err
		}
	}

	burgerRepo := repo.NewBurgerRepo(db)
	complementRepo := repo.NewComplementRepo(db)
	menuRepo := repo.NewMenuRepo(db)
	userRepo := repo.NewUserRepo(db)

	return &app{
		burgers:     service.NewBurgerService(burgerRepo, nil),
		complements: service.NewComplementService(complementRepo, nil),
		menus:       service.NewMenuService(menuRepo, burgerRepo, complementRepo, nil),
		users:       service.NewUserService(userRepo),
	}, nil
}

var stdin = bufio.NewReader(os.Stdin)

func prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptRequired(label string) string {
	for {
		if s := prompt(label); s != "" {
			return s
		}
		fmt.Println("a value is required")
	}
}

func promptFloat(label string) float64 {
	for {
		s := promptRequired(label)
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f
		}
		fmt.Println("enter a number")
	}
}

// promptIDs reads a comma-separated id list; an empty line means none.
func promptIDs(label string) []uint {
	for {
		s := prompt(label)
		if s == "" {
			return nil
		}
		ids, err := parseIDs(s)
		if err == nil {
			return ids
		}
		fmt.Println("enter comma-separated ids, e.g. 1,3,4")
	}
}

func parseIDs(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(n))
	}
	return ids, nil
}
