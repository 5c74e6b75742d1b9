package cmd

import (
	"fmt"

	"github.com/avolkov/bookdesk/internal/config"
	"github.com/avolkov/bookdesk/internal/database"
	"github.com/avolkov/bookdesk/internal/server"
	"github.com/avolkov/bookdesk/internal/store"
	"github.com/spf13/cobra"
)

var serveFromDB bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP API",
	Long: `Start an HTTP server exposing the loaded snapshot:
- customer directory with search
- per-customer orders and statistics
- the plain-text reports

Data comes from the configured import files, or from the relational
mirror with --from-db.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveFromDB, "from-db", false, "Load the snapshot from the relational mirror instead of files")
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Bookdesk starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var st *store.Store
	if serveFromDB {
		fmt.Println("🔌 Loading snapshot from mirror database...")
		db, err := database.NewConnection(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		st, err = db.LoadStore()
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
	} else {
		fmt.Println("📂 Loading snapshot from data files...")
		st, err = loadStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(st)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
