package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/service"
)

// burgerctl create-burger
var createBurgerCmd = &cobra.Command{
	Use:   "create-burger",
	Short: "Create a burger interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		in := service.BurgerInput{
			Name:        promptRequired("Name"),
			Description: prompt("Description"),
			Price:       promptFloat("Price"),
			Image:       prompt("Image URL"),
		}
		b, err := a.burgers.Create(in)
		if err != nil {
			return err
		}
		fmt.Printf("burger %q created with id %d\n", b.Name, b.ID)
		return nil
	},
}

// burgerctl create-complement
var createComplementCmd = &cobra.Command{
	Use:   "create-complement",
	Short: "Create a complement interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		in := service.ComplementInput{
			Name:        promptRequired("Name"),
			Description: prompt("Description"),
			Price:       promptFloat("Price"),
			Image:       prompt("Image URL"),
			Type:        promptType(),
		}
		x, err := a.complements.Create(in)
		if err != nil {
			return err
		}
		fmt.Printf("complement %q (%s) created with id %d\n", x.Name, x.Type, x.ID)
		return nil
	},
}

func promptType() string {
	choices := strings.Join(domain.ComplementTypes, "/")
	for {
		t := strings.ToUpper(promptRequired("Type (" + choices + ")"))
		for _, v := range domain.ComplementTypes {
			if t == v {
				return t
			}
		}
		fmt.Println("choose one of: " + choices)
	}
}
