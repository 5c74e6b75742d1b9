package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avolkov/bookdesk/internal/config"
	"github.com/avolkov/bookdesk/internal/ingest"
	"github.com/avolkov/bookdesk/internal/store"
)

// loadStore builds an in-memory store from the data files named in the
// config, using the default missing-customer policy for each format.
// Commands that operate on a populated snapshot (export, report, sync,
// serve) all start here.
func loadStore(cfg *config.Config) (*store.Store, error) {
	st := store.New()
	imp := ingest.NewImporter(st)

	customers, err := importCustomersFile(imp, cfg.Import.CustomersFile)
	if err != nil {
		return nil, err
	}
	fmt.Printf("   👥 %d customers loaded (%d skipped)\n", customers.Accepted, customers.Skipped)

	if cfg.Import.OrdersFile != "" {
		orders, err := importOrdersFile(imp, cfg.Import.OrdersFile, defaultPolicy(cfg.Import.OrdersFile))
		if err != nil {
			return nil, err
		}
		fmt.Printf("   📦 %d orders loaded (%d skipped)\n", orders.Accepted, orders.Skipped)
	}

	return st, nil
}

func importCustomersFile(imp *ingest.Importer, path string) (*ingest.Result, error) {
	if isExcel(path) {
		return imp.CustomersFromExcel(path)
	}
	return imp.CustomersFromCSV(path)
}

func importOrdersFile(imp *ingest.Importer, path string, policy ingest.MissingCustomerPolicy) (*ingest.Result, error) {
	if isExcel(path) {
		return imp.OrdersFromExcel(path, policy)
	}
	return imp.OrdersFromCSV(path, policy)
}

// defaultPolicy keeps the historical behavior of each entry point: CSV
// order imports skip rows naming unknown customers, Excel imports
// auto-create them.
func defaultPolicy(path string) ingest.MissingCustomerPolicy {
	if isExcel(path) {
		return ingest.AutoCreate
	}
	return ingest.SkipRow
}

func isExcel(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".xlsx" || ext == ".xlsm"
}
