package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"burgerhouse/internal/service"
)

var (
	menuBurgerIDs     []uint
	menuComplementIDs []uint
)

// burgerctl create-menu
var createMenuCmd = &cobra.Command{
	Use:   "create-menu",
	Short: "Create a menu from existing burgers and complements",
	Long:  "Creates a menu. Member ids can be passed with -b and -c; without flags the active items are listed and ids are read interactively. The price is the member total with the menu discount applied.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}

		name := promptRequired("Name")
		description := prompt("Description")
		image := prompt("Image URL")

		burgerIDs := menuBurgerIDs
		if !cmd.Flags().Changed("burgers") {
			if err := printBurgers(a); err != nil {
				return err
			}
			burgerIDs = promptIDs("Burger ids")
		}
		complementIDs := menuComplementIDs
		if !cmd.Flags().Changed("complements") {
			if err := printComplements(a); err != nil {
				return err
			}
			complementIDs = promptIDs("Complement ids")
		}
		if len(burgerIDs) == 0 && len(complementIDs) == 0 {
			return errors.New("a menu needs at least one burger or complement")
		}

		m, err := a.menus.Create(cmd.Context(), service.MenuInput{
			Name:          name,
			Description:   description,
			Image:         image,
			BurgerIDs:     burgerIDs,
			ComplementIDs: complementIDs,
		})
		if err != nil {
			return err
		}
		fmt.Printf("menu %q created with id %d, price %.2f\n", m.Name, m.ID, m.Price)
		return nil
	},
}

func init() {
	createMenuCmd.Flags().UintSliceVarP(&menuBurgerIDs, "burgers", "b", nil, "burger ids, comma-separated")
	createMenuCmd.Flags().UintSliceVarP(&menuComplementIDs, "complements", "c", nil, "complement ids, comma-separated")
}

func printBurgers(a *app) error {
	burgers, err := a.burgers.ListActive()
	if err != nil {
		return err
	}
	fmt.Println("Active burgers:")
	for _, b := range burgers {
		fmt.Printf("  [%d] %s (%.2f)\n", b.ID, b.Name, b.Price)
	}
	return nil
}

func printComplements(a *app) error {
	complements, err := a.complements.ListActive()
	if err != nil {
		return err
	}
	fmt.Println("Active complements:")
	for _, c := range complements {
		fmt.Printf("  [%d] %s %s (%.2f)\n", c.ID, c.Type, c.Name, c.Price)
	}
	return nil
}
