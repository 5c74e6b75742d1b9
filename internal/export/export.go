// Package export writes the directory and ledger out to CSV or Excel.
// The customer header set matches the import alias tables, so an
// exported file re-imports cleanly.
package export

import (
	"fmt"

	"github.com/avolkov/bookdesk/internal/store"
)

var customerHeaders = []string{
	"id", "full_name", "email", "phone", "registration_date",
	"total_orders", "total_spent", "notes",
}

var orderHeaders = []string{
	"order_id", "customer_id", "customer_name", "order_date",
	"book_title", "author", "genre", "quantity", "price", "discount",
	"final_price", "total_amount", "status", "delivery_method", "order_notes",
}

// customerRecords renders every customer with its derived order count
// and total spent.
func customerRecords(st *store.Store) [][]string {
	records := [][]string{customerHeaders}
	for _, c := range st.Customers.All() {
		stats := st.Orders.Statistics(c.ID)
		records = append(records, []string{
			fmt.Sprintf("%d", c.ID),
			c.FullName,
			c.Email,
			c.Phone,
			c.RegistrationDate,
			fmt.Sprintf("%d", stats.Count),
			fmt.Sprintf("%.2f", stats.TotalAmount),
			c.Notes,
		})
	}
	return records
}

// orderRecords renders one flat row per order, derived fields included.
func orderRecords(st *store.Store) [][]string {
	records := [][]string{orderHeaders}
	for _, o := range st.Orders.All() {
		records = append(records, []string{
			o.ID,
			fmt.Sprintf("%d", o.CustomerID),
			o.CustomerName,
			o.Date,
			o.BookTitle,
			o.Author,
			o.Genre,
			fmt.Sprintf("%d", o.Quantity),
			fmt.Sprintf("%.2f", o.Price),
			fmt.Sprintf("%.1f", o.Discount),
			fmt.Sprintf("%.2f", o.FinalPrice),
			fmt.Sprintf("%.2f", o.TotalAmount),
			o.Status,
			o.DeliveryMethod,
			o.Notes,
		})
	}
	return records
}
