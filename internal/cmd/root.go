package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bookdesk",
	Short: "Bookdesk - bookstore customer and order tracker",
	Long: `Bookdesk tracks a bookstore's customers and their orders: it imports
dirty CSV/Excel exports, keeps an in-memory directory and ledger,
generates plain-text reports, and can mirror everything into a
relational store with an optional BI notification.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
