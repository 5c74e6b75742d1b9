package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avolkov/bookdesk/internal/models"
	"github.com/avolkov/bookdesk/internal/store"
)

func writeWorkbook(t *testing.T, name string, records [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &record))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestCustomersFromExcel(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)

	path := writeWorkbook(t, "clients.xlsx", [][]any{
		{"ФИО", "Email", "Телефон", "Дата регистрации"},
		{"Киселев Любомир Адамович", "kiselev@mail.ru", "+79876143194", "26.09.2024"},
		// Spreadsheet-flavored layout only the Excel path accepts.
		{"Фокин Гостомысл Ильясович", "fokin@mail.ru", "+79876143195", "2024.09.25"},
	})

	res, err := imp.CustomersFromExcel(path)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Accepted)
	assert.Zero(t, res.Skipped)

	c, ok := st.Customers.FindByName("Фокин Гостомысл Ильясович")
	require.True(t, ok)
	assert.Equal(t, "2024-09-25", c.RegistrationDate)
}

func TestOrdersFromExcelFuzzyNameMatch(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)
	st.AddCustomer(models.Customer{FullName: "Киселев Любомир Адамович"})

	path := writeWorkbook(t, "orders.xlsx", [][]any{
		{"ФИО_клиента", "Название_книги", "Количество", "Цена_за_шт"},
		// Truncated name resolves through the substring fallback.
		{"Киселев Любомир", "Мастер и Маргарита", 2, 450},
	})

	res, err := imp.OrdersFromExcel(path, SkipRow)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Accepted)
	assert.Zero(t, res.Skipped)
	assert.Equal(t, 1, st.Customers.Len(), "fuzzy match reuses the existing customer")

	orders := st.Orders.All()
	require.Len(t, orders, 1)
	assert.Equal(t, "Киселев Любомир Адамович", orders[0].CustomerName)
}

func TestOrdersFromExcelAutoCreate(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)

	path := writeWorkbook(t, "orders.xlsx", [][]any{
		{"ФИО_клиента", "Название_книги", "Количество", "Цена_за_шт"},
		{"Новый Клиент", "Идиот", 1, 200},
	})

	res, err := imp.OrdersFromExcel(path, AutoCreate)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Accepted)
	created, ok := st.Customers.FindByName("Новый Клиент")
	require.True(t, ok)
	assert.Equal(t, autoCreatedNote, created.Notes)
}

func TestExcelMissingFile(t *testing.T) {
	imp := NewImporter(store.New())

	_, err := imp.CustomersFromExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
