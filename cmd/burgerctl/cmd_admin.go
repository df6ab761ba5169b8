package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
)

// burgerctl create-admin
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create the admin account if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		u, created, err := a.users.EnsureAdmin(adminEmail, adminPassword)
		if err != nil {
			return err
		}
		if !created {
			fmt.Printf("admin %s already exists (id %d)\n", u.Email, u.ID)
			return nil
		}
		fmt.Printf("admin %s created with id %d\n", u.Email, u.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "admin@example.com", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "admin123", "admin password")
}
