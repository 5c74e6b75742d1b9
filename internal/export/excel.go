package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/avolkov/bookdesk/internal/store"
)

// CustomersExcel writes the customer list to a single-sheet workbook.
func CustomersExcel(path string, st *store.Store) error {
	return writeExcel(path, "Customers", customerRecords(st))
}

// OrdersExcel writes the order ledger to a single-sheet workbook.
func OrdersExcel(path string, st *store.Store) error {
	return writeExcel(path, "Orders", orderRecords(st))
}

func writeExcel(path, sheet string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		row := make([]any, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
