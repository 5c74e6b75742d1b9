package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/bookdesk/internal/store"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const customersCSV = `ФИО,Email,Телефон,Дата регистрации,Примечания
Киселев Любомир Адамович,kiselev@mail.ru,+79876143194,26.09.2024,prepaid
Фокин Гостомысл Ильясович,fokin@mail.ru,+79876143195,2024-09-25,
   ,blank@mail.ru,,2024-01-01,no name here
`

func TestCustomersFromCSV(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)

	res, err := imp.CustomersFromCSV(writeFile(t, "clients.csv", customersCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, 1, res.Skipped, "blank-name row is skipped, not fatal")
	assert.Len(t, res.Warnings, 1)
	assert.NotEmpty(t, res.BatchID)

	c, ok := st.Customers.FindByName("Киселев Любомир Адамович")
	require.True(t, ok)
	assert.Equal(t, "2024-09-26", c.RegistrationDate)
}

func TestCustomersFromCSVFullReplace(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)
	path := writeFile(t, "clients.csv", customersCSV)

	_, err := imp.CustomersFromCSV(path)
	require.NoError(t, err)
	_, err = imp.CustomersFromCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Customers.Len(), "re-import replaces, never merges")
	c, _ := st.Customers.FindByName("Киселев Любомир Адамович")
	assert.Equal(t, 1, c.ID, "identifier counter restarts on full replace")
}

func TestCustomersFromCSVMalformedFileLeavesStateUntouched(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)

	_, err := imp.CustomersFromCSV(writeFile(t, "good.csv", customersCSV))
	require.NoError(t, err)

	// Unclosed quote makes the whole file unparseable: tier-3 fatal.
	bad := writeFile(t, "bad.csv", "ФИО,Email\n\"broken,row\n")
	_, err = imp.CustomersFromCSV(bad)
	require.Error(t, err)
	assert.Equal(t, 2, st.Customers.Len(), "prior state survives a fatal import error")

	_, err = imp.CustomersFromCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Equal(t, 2, st.Customers.Len())
}

const ordersCSV = `ID_заказа,ФИО_клиента,Название_книги,Количество,Цена_за_шт,Скидка_%,Дата_заказа,Статус_заказа
ORD001,Киселев Любомир Адамович,Мастер и Маргарита,1,450,10,27.09.2024,completed
ORD002,Фокин Гостомысл Ильясович,Маленький принц,3,320,15,2024-09-26,awaiting payment
ORD003,Неизвестный Клиент,Идиот,1,200,0,2024-09-28,paid
,Киселев Любомир Адамович,Обломов,2,150,0,2024-09-29,paid
`

func loadCustomers(t *testing.T, imp *Importer) {
	t.Helper()
	_, err := imp.CustomersFromCSV(writeFile(t, "clients.csv", customersCSV))
	require.NoError(t, err)
}

func TestOrdersFromCSVSkipPolicy(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)
	loadCustomers(t, imp)

	res, err := imp.OrdersFromCSV(writeFile(t, "orders.csv", ordersCSV), SkipRow)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Accepted)
	assert.Equal(t, 1, res.Skipped, "unknown customer row is skipped under SkipRow")
	assert.Equal(t, 2, st.Customers.Len(), "no customers are created under SkipRow")

	// Derived fields come from quantity/price/discount, not the source.
	o, ok := st.Orders.FindByID("ORD001")
	require.True(t, ok)
	assert.InDelta(t, 405.0, o.FinalPrice, 1e-9)
	assert.InDelta(t, 405.0, o.TotalAmount, 1e-9)
	assert.Equal(t, "2024-09-27", o.Date)

	// The id-less row gets a generated identifier past ORD002.
	generated, ok := st.Orders.FindByID("ORD003")
	assert.True(t, ok)
	assert.Equal(t, "Обломов", generated.BookTitle)
}

func TestOrdersFromCSVAutoCreatePolicy(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)
	loadCustomers(t, imp)

	res, err := imp.OrdersFromCSV(writeFile(t, "orders.csv", ordersCSV), AutoCreate)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Accepted)
	assert.Zero(t, res.Skipped)

	created, ok := st.Customers.FindByName("Неизвестный Клиент")
	require.True(t, ok, "unknown customer is synthesized under AutoCreate")
	assert.Equal(t, autoCreatedNote, created.Notes)

	// Every imported order resolves in the directory.
	for _, o := range st.Orders.All() {
		_, ok := st.Customers.FindByID(o.CustomerID)
		assert.True(t, ok)
	}
}

func TestOrdersFromCSVFullReplace(t *testing.T) {
	st := store.New()
	imp := NewImporter(st)
	loadCustomers(t, imp)
	path := writeFile(t, "orders.csv", ordersCSV)

	_, err := imp.OrdersFromCSV(path, SkipRow)
	require.NoError(t, err)
	_, err = imp.OrdersFromCSV(path, SkipRow)
	require.NoError(t, err)

	assert.Equal(t, 3, st.Orders.Len(), "re-import replaces the ledger")
}
