package cmd

import (
	"fmt"

	"github.com/avolkov/bookdesk/internal/config"
	"github.com/avolkov/bookdesk/internal/database"
	"github.com/spf13/cobra"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the relational mirror schema",
	Long: `Creates the customers and orders mirror tables. Orders reference
customers with a cascading delete, and saves are idempotent upserts, so
the mirror can be rebuilt at any time with the sync command.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing mirror tables before creating")
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up mirror database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Drop tables if requested
	if dropFirst {
		fmt.Println("🗑️  Dropping existing mirror tables...")
		if err := db.DropMirrorSchema(); err != nil {
			return fmt.Errorf("failed to drop mirror schema: %w", err)
		}
	}

	fmt.Println("📋 Creating mirror schema...")
	if err := db.SetupMirrorSchema(); err != nil {
		return fmt.Errorf("failed to setup mirror schema: %w", err)
	}

	fmt.Println("✅ Mirror database setup complete!")
	return nil
}
