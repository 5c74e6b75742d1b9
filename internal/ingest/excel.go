package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/avolkov/bookdesk/internal/coerce"
	"github.com/avolkov/bookdesk/internal/rowmap"
)

// CustomersFromExcel does a full-replace load of the directory from the
// first sheet of a workbook. The Excel path accepts two extra date
// layouts that spreadsheet exports tend to produce.
func (imp *Importer) CustomersFromExcel(path string) (*Result, error) {
	rows, err := readExcelRows(path)
	if err != nil {
		return nil, err
	}
	return imp.importCustomers(rows, coerce.ExcelFormats), nil
}

// OrdersFromExcel does a full-replace load of the ledger from a
// workbook. Unlike the CSV path it falls back to a substring name match,
// tolerating the formatting drift common in hand-edited sheets.
func (imp *Importer) OrdersFromExcel(path string, policy MissingCustomerPolicy) (*Result, error) {
	rows, err := readExcelRows(path)
	if err != nil {
		return nil, err
	}
	return imp.importOrders(rows, coerce.ExcelFormats, policy, true), nil
}

func readExcelRows(path string) ([]rowmap.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
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
