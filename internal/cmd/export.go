package cmd

import (
	"fmt"

	"github.com/avolkov/bookdesk/internal/config"
	"github.com/avolkov/bookdesk/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportOut  string
	exportWhat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export customers or orders to CSV or Excel",
	Long: `Load the configured data files and export either the customer list
(with derived order count and total spent) or the flat order ledger.
The output format follows the file extension: .csv or .xlsx.

Customer exports use the same headers the importer understands, so an
exported file round-trips.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "customers_export.csv", "Output file path (.csv or .xlsx)")
	exportCmd.Flags().StringVar(&exportWhat, "what", "customers", "What to export: customers or orders")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("📂 Loading data...")
	st, err := loadStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	fmt.Printf("📤 Exporting %s to %s...\n", exportWhat, exportOut)

	switch {
	case exportWhat == "customers" && isExcel(exportOut):
		err = export.CustomersExcel(exportOut, st)
	case exportWhat == "customers":
		err = export.CustomersCSV(exportOut, st)
	case exportWhat == "orders" && isExcel(exportOut):
		err = export.OrdersExcel(exportOut, st)
	case exportWhat == "orders":
		err = export.OrdersCSV(exportOut, st)
	default:
		return fmt.Errorf("unknown export target %q (want customers or orders)", exportWhat)
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	fmt.Println("✅ Export complete!")
	return nil
}
