// Package ingest loads customers and orders from tabular files into the
// in-memory store. Imports are row-at-a-time and non-transactional: a
// bad row is skipped and counted, never aborting the batch. A file that
// cannot be opened or parsed at all is fatal and leaves prior state
// untouched, because every source is fully read before the target
// collection is reset.
package ingest

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkov/bookdesk/internal/coerce"
	"github.com/avolkov/bookdesk/internal/models"
	"github.com/avolkov/bookdesk/internal/rowmap"
	"github.com/avolkov/bookdesk/internal/store"
)

// MissingCustomerPolicy decides what happens to an order row whose
// customer name does not resolve in the directory. Each entry point
// picks one policy explicitly; mixing them silently is how data goes
// bad.
type MissingCustomerPolicy int

const (
	// SkipRow drops the order row with a warning.
	SkipRow MissingCustomerPolicy = iota
	// AutoCreate synthesizes a customer for the unknown name, marked in
	// its notes, and keeps the order.
	AutoCreate
)

// autoCreatedNote marks customers synthesized by AutoCreate.
const autoCreatedNote = "auto-created during order import"

// Result summarizes one import batch for the caller to surface.
type Result struct {
	BatchID  string   `json:"batch_id"`
	Accepted int      `json:"accepted"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

func newResult() *Result {
	return &Result{BatchID: uuid.NewString()}
}

func (r *Result) warnf(logger *slog.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	logger.Warn(msg, slog.String("batch_id", r.BatchID))
}

// Importer runs import batches against one store.
type Importer struct {
	store  *store.Store
	logger *slog.Logger
}

func NewImporter(st *store.Store) *Importer {
	return &Importer{store: st, logger: slog.Default()}
}

// importCustomers replaces the directory contents with the given rows.
// The whole store is reset first: reloading customers from scratch must
// not leave orders pointing at ids from the previous load.
func (imp *Importer) importCustomers(rows []rowmap.Row, dateFormats []string) *Result {
	res := newResult()
	imp.store.Reset()

	for i, row := range rows {
		c, err := rowmap.Customer(row, dateFormats)
		if err != nil {
			res.Skipped++
			res.warnf(imp.logger, "customer row %d skipped: %v", i+2, err)
			continue
		}
		imp.store.AddCustomer(c)
		res.Accepted++
	}
	return res
}

// importOrders replaces the ledger contents with the given rows, matched
// against the already-loaded directory. fuzzyMatch enables the
// substring-fallback name lookup; only the Excel path turns it on.
func (imp *Importer) importOrders(rows []rowmap.Row, dateFormats []string, policy MissingCustomerPolicy, fuzzyMatch bool) *Result {
	res := newResult()
	imp.store.Orders.Reset()

	for i, row := range rows {
		o, customerName, err := rowmap.Order(row, dateFormats)
		if err != nil {
			res.Skipped++
			res.warnf(imp.logger, "order row %d skipped: %v", i+2, err)
			continue
		}

		customer, ok := imp.store.Customers.FindByName(customerName)
		if !ok && fuzzyMatch {
			customer, ok = imp.store.Customers.FindByNameContains(customerName)
		}
		if !ok {
			switch policy {
			case AutoCreate:
				customer = imp.store.AddCustomer(models.Customer{
					FullName:         customerName,
					RegistrationDate: coerce.Date(nil),
					Notes:            autoCreatedNote,
				})
				res.warnf(imp.logger, "order row %d: customer %q auto-created", i+2, customerName)
			default:
				res.Skipped++
				res.warnf(imp.logger, "order row %d skipped: customer %q not found", i+2, customerName)
				continue
			}
		}

		o.CustomerID = customer.ID
		if _, err := imp.store.AddOrder(o); err != nil {
			res.Skipped++
			res.warnf(imp.logger, "order row %d skipped: %v", i+2, err)
			continue
		}
		res.Accepted++
	}
	return res
}
