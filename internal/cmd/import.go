package cmd

import (
	"fmt"

	"github.com/avolkov/bookdesk/internal/ingest"
	"github.com/avolkov/bookdesk/internal/store"
	"github.com/spf13/cobra"
)

var (
	importCustomersPath string
	importOrdersPath    string
	importCreateMissing bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import customers and orders from CSV or Excel files",
	Long: `Import customers and/or orders from tabular files into the in-memory
store and print a batch summary. Column order is irrelevant; headers are
matched against the known alias spellings, localized ones included.

Each import is a full replace of its collection. Bad rows are skipped
and reported, they never abort the batch. Order rows naming an unknown
customer are skipped on the CSV path and auto-created on the Excel path
unless --create-missing says otherwise.`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importCustomersPath, "customers", "", "Customer file to import (.csv or .xlsx)")
	importCmd.Flags().StringVar(&importOrdersPath, "orders", "", "Order file to import (.csv or .xlsx)")
	importCmd.Flags().BoolVar(&importCreateMissing, "create-missing", false, "Auto-create customers referenced by unknown order rows")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importCustomersPath == "" && importOrdersPath == "" {
		return fmt.Errorf("nothing to import: pass --customers and/or --orders")
	}

	st := store.New()
	imp := ingest.NewImporter(st)

	if importCustomersPath != "" {
		fmt.Printf("🔄 Importing customers from %s...\n", importCustomersPath)
		res, err := importCustomersFile(imp, importCustomersPath)
		if err != nil {
			return fmt.Errorf("failed to import customers: %w", err)
		}
		printResult(res)
	}

	if importOrdersPath != "" {
		policy := defaultPolicy(importOrdersPath)
		if cmd.Flags().Changed("create-missing") {
			policy = ingest.SkipRow
			if importCreateMissing {
				policy = ingest.AutoCreate
			}
		}

		fmt.Printf("🔄 Importing orders from %s...\n", importOrdersPath)
		res, err := importOrdersFile(imp, importOrdersPath, policy)
		if err != nil {
			return fmt.Errorf("failed to import orders: %w", err)
		}
		printResult(res)
	}

	fmt.Printf("✅ Store now holds %d customers and %d orders\n", st.Customers.Len(), st.Orders.Len())
	return nil
}

func printResult(res *ingest.Result) {
	fmt.Printf("   Batch %s: %d accepted, %d skipped\n", res.BatchID, res.Accepted, res.Skipped)
	for _, w := range res.Warnings {
		fmt.Printf("   ⚠️  %s\n", w)
	}
}
