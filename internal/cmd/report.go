package cmd

import (
	"fmt"
	"strings"

	"github.com/avolkov/bookdesk/internal/config"
	"github.com/avolkov/bookdesk/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report <kind>",
	Short: "Generate a plain-text report",
	Long: fmt.Sprintf(`Load the configured data files and print one of the reports:
  %s

--from/--to (YYYY-MM-DD, inclusive) restrict order-derived figures to a
date window and the registration analysis to a registration window.`,
		strings.Join(report.Kinds(), "\n  ")),
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date (YYYY-MM-DD)")
}

func runReport(cmd *cobra.Command, args []string) error {
	kind, err := report.ParseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("📂 Loading data...")
	st, err := loadStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	rng := report.Range{From: reportFrom, To: reportTo}
	fmt.Println()
	fmt.Print(report.Generate(kind, st.Customers.All(), st.Orders.All(), rng))
	return nil
}
