package cmd

import (
	"context"
	"fmt"

	"github.com/avolkov/bookdesk/internal/bisync"
	"github.com/avolkov/bookdesk/internal/config"
	"github.com/avolkov/bookdesk/internal/database"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the current data into the relational store",
	Long: `Load the configured data files and upsert every customer and order
into the mirror tables. Saving twice with the same data leaves the
tables unchanged.

When a Metabase endpoint is configured, a best-effort notification is
sent afterwards; a failure there is logged and never fails the sync.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("📂 Loading data...")
	st, err := loadStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Printf("💾 Mirroring %d customers and %d orders...\n", st.Customers.Len(), st.Orders.Len())
	if err := db.SaveAll(st); err != nil {
		return fmt.Errorf("failed to save mirror: %w", err)
	}
	fmt.Println("✅ Mirror saved!")

	// Best effort only: the save above already succeeded.
	notifier := bisync.New(cfg.Metabase)
	if notifier.Enabled() {
		fmt.Println("📣 Notifying BI endpoint...")
		notifier.NotifySaved(context.Background(), st.Customers.Len(), st.Orders.Len())
	}

	return nil
}
