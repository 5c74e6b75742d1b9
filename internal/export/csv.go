package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/avolkov/bookdesk/internal/store"
)

// CustomersCSV writes the customer list with derived statistics.
func CustomersCSV(path string, st *store.Store) error {
	return writeCSV(path, customerRecords(st))
}

// OrdersCSV writes one row per order, including derived pricing fields.
func OrdersCSV(path string, st *store.Store) error {
	return writeCSV(path, orderRecords(st))
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
