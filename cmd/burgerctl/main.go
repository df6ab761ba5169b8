package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "burgerctl",
	Short: "Burgerhouse back-office CLI",
	Long:  "burgerctl manages the burgerhouse catalog from the command line: burgers, complements, menus and the admin account.",
}

func init() {
	rootCmd.AddCommand(createBurgerCmd)
	rootCmd.AddCommand(createComplementCmd)
	rootCmd.AddCommand(createMenuCmd)
	rootCmd.AddCommand(createAdminCmd)
}
