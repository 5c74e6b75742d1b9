package ingest

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/avolkov/bookdesk/internal/coerce"
	"github.com/avolkov/bookdesk/internal/rowmap"
)

// CustomersFromCSV does a full-replace load of the directory from a
// header-driven CSV file.
func (imp *Importer) CustomersFromCSV(path string) (*Result, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	return imp.importCustomers(rows, coerce.Formats), nil
}

// OrdersFromCSV does a full-replace load of the ledger from a CSV file,
// matching rows against the already-loaded directory by exact name.
func (imp *Importer) OrdersFromCSV(path string, policy MissingCustomerPolicy) (*Result, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	return imp.importOrders(rows, coerce.Formats, policy, false), nil
}

// readCSVRows reads the whole file up front so that a malformed file
// fails before any in-memory state is touched. Column order is
// irrelevant; the first record is the header.
func readCSVRows(path string) ([]rowmap.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are a per-row problem, not a file problem

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	rows := make([]rowmap.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, rowmap.FromRecord(headers, record))
	}
	return rows, nil
}
