package rowmap

import (
	"errors"

	"github.com/avolkov/bookdesk/internal/coerce"
	"github.com/avolkov/bookdesk/internal/models"
)

// ErrMissingName rejects a customer row whose full name is blank.
var ErrMissingName = errors.New("customer row has no full name")

// ErrMissingCustomer rejects an order row that names no customer.
var ErrMissingCustomer = errors.New("order row has no customer name")

// Customer builds a customer record from a row. The ID is left unset;
// the directory assigns it on insert. dateFormats selects the CSV or
// Excel date layout list.
func Customer(row Row, dateFormats []string) (models.Customer, error) {
	name, ok := row.First(aliasCustomerName)
	if !ok {
		return models.Customer{}, ErrMissingName
	}

	c := models.Customer{
		FullName:         name,
		ContactInfo:      coerce.Text(row.Get(aliasCustomerContact, "")),
		Email:            coerce.Text(row.Get(aliasCustomerEmail, "")),
		Phone:            coerce.Text(row.Get(aliasCustomerPhone, "")),
		RegistrationDate: coerce.DateIn(rawOrNil(row, aliasCustomerRegDate), dateFormats),
		Notes:            coerce.Text(row.Get(aliasCustomerNotes, "")),
	}
	return c, nil
}

// Order builds an order record from a row and returns the customer name
// the row references. CustomerID is resolved by the import pipeline, and
// the ID stays empty unless the source supplied one. Derived pricing
// fields are always recomputed; source-supplied totals are ignored so a
// stale spreadsheet column cannot disagree with quantity and price.
func Order(row Row, dateFormats []string) (models.Order, string, error) {
	customerName, ok := row.First(aliasOrderCustomer)
	if !ok {
		return models.Order{}, "", ErrMissingCustomer
	}

	o := models.Order{
		ID:             row.Get(aliasOrderID, ""),
		CustomerName:   customerName,
		Date:           coerce.DateIn(rawOrNil(row, aliasOrderDate), dateFormats),
		BookTitle:      coerce.Text(row.Get(aliasOrderTitle, "")),
		Author:         coerce.Text(row.Get(aliasOrderAuthor, "")),
		Genre:          coerce.Text(row.Get(aliasOrderGenre, "")),
		Quantity:       coerce.Int(rawOrNil(row, aliasOrderQuantity)),
		Price:          coerce.Float(rawOrNil(row, aliasOrderPrice)),
		Discount:       coerce.Float(rawOrNil(row, aliasOrderDiscount)),
		Status:         row.Get(aliasOrderStatus, models.StatusAwaitingPayment),
		DeliveryMethod: coerce.Text(row.Get(aliasOrderDelivery, "")),
		Notes:          coerce.Text(row.Get(aliasOrderNotes, "")),
	}
	o.ComputeDerived()
	return o, customerName, nil
}

// rawOrNil feeds coerce the raw value when the column is present and nil
// when it is absent, so the coercer's missing-value default applies.
func rawOrNil(row Row, aliases []string) any {
	if v, ok := row.First(aliases); ok {
		return v
	}
	return nil
}
