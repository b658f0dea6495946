package main

import (
	"fmt"
	"log"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/routes"
	"github.com/Kariqs/shopcart-api/services"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopcart-api",
	Short: "Shop Cart API - catalog, cart and order backend",
	Long: `Shop Cart API serves the product catalog, per-user shopping carts,
wishlists, reviews and order history over HTTP.

Running without a subcommand starts the server.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initializers.LoadEnv()
	},
	RunE: runServer,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the HTTP server",
	RunE:  runServer,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		initializers.ConnectToDB()
		if err := initializers.Migrate(initializers.DB); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Println("Database synced successfully.")
		return nil
	},
}

var admin models.RegisterData

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a staff account from the command line",
	RunE: func(cmd *cobra.Command, args []string) error {
		initializers.ConnectToDB()
		initializers.SyncDatabase()

		user, err := services.RegisterUser(initializers.DB, admin, true)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		log.Printf("Admin account %s created with id %d.", user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)

	createAdminCmd.Flags().StringVar(&admin.Email, "email", "", "Admin email address")
	createAdminCmd.Flags().StringVar(&admin.Password, "password", "", "Admin password")
	createAdminCmd.Flags().StringVar(&admin.FirstName, "first-name", "", "Admin first name")
	createAdminCmd.Flags().StringVar(&admin.LastName, "last-name", "", "Admin last name")
	createAdminCmd.MarkFlagRequired("email")
	createAdminCmd.MarkFlagRequired("password")
}

func runServer(cmd *cobra.Command, args []string) error {
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.ConnectToRedis()
	initializers.ConnectToStorage()
	initializers.SetupMailer()

	server := routes.SetupRouter()
	return server.Run(":" + initializers.Config.Port)
}
