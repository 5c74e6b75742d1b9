package database

import (
	"fmt"

	"github.com/avolkov/bookdesk/internal/models"
	"github.com/avolkov/bookdesk/internal/store"
)

// SaveAll mirrors the in-memory store into the relational tables with
// upsert-by-id semantics, so repeated saves of the same data are
// idempotent per id.
func (db *DB) SaveAll(st *store.Store) error {
	for _, c := range st.Customers.All() {
		if err := db.upsertCustomer(c); err != nil {
			return fmt.Errorf("failed to save customer %d: %w", c.ID, err)
		}
	}
	for _, o := range st.Orders.All() {
		if err := db.upsertOrder(o); err != nil {
			return fmt.Errorf("failed to save order %s: %w", o.ID, err)
		}
	}
	return nil
}

func (db *DB) upsertCustomer(c models.Customer) error {
	_, err := db.Exec(`
		INSERT INTO customers (
			id, full_name, contact_info, email, phone, registration_date, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			full_name = VALUES(full_name),
			contact_info = VALUES(contact_info),
			email = VALUES(email),
			phone = VALUES(phone),
			registration_date = VALUES(registration_date),
			notes = VALUES(notes)
	`, c.ID, c.FullName, c.ContactInfo, c.Email, c.Phone, c.RegistrationDate, c.Notes)

	return err
}

func (db *DB) upsertOrder(o models.Order) error {
	_, err := db.Exec(`
		INSERT INTO orders (
			id, customer_id, customer_name, order_date, book_title, author,
			genre, quantity, price, discount, final_price, total_amount,
			status, delivery_method, order_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			customer_id = VALUES(customer_id),
			customer_name = VALUES(customer_name),
			order_date = VALUES(order_date),
			book_title = VALUES(book_title),
			author = VALUES(author),
			genre = VALUES(genre),
			quantity = VALUES(quantity),
			price = VALUES(price),
			discount = VALUES(discount),
			final_price = VALUES(final_price),
			total_amount = VALUES(total_amount),
			status = VALUES(status),
			delivery_method = VALUES(delivery_method),
			order_notes = VALUES(order_notes)
	`, o.ID, o.CustomerID, o.CustomerName, o.Date, o.BookTitle, o.Author,
		o.Genre, o.Quantity, o.Price, o.Discount, o.FinalPrice, o.TotalAmount,
		o.Status, o.DeliveryMethod, o.Notes)

	return err
}

// LoadStore reads the mirror back into a fresh in-memory store.
func (db *DB) LoadStore() (*store.Store, error) {
	st := store.New()

	customers, err := db.loadCustomers()
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	for _, c := range customers {
		st.Customers.Restore(c)
	}

	orders, err := db.loadOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for _, o := range orders {
		if _, err := st.AddOrder(o); err != nil {
			return nil, fmt.Errorf("failed to restore order %s: %w", o.ID, err)
		}
	}

	return st, nil
}

func (db *DB) loadCustomers() ([]models.Customer, error) {
	rows, err := db.Query(`
		SELECT
			id, full_name,
			COALESCE(contact_info, '') as contact_info,
			COALESCE(email, '') as email,
			COALESCE(phone, '') as phone,
			COALESCE(DATE_FORMAT(registration_date, '%Y-%m-%d'), '') as registration_date,
			COALESCE(notes, '') as notes
		FROM customers
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(
			&c.ID, &c.FullName, &c.ContactInfo, &c.Email, &c.Phone,
			&c.RegistrationDate, &c.Notes,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (db *DB) loadOrders() ([]models.Order, error) {
	rows, err := db.Query(`
		SELECT
			id, customer_id,
			COALESCE(customer_name, '') as customer_name,
			COALESCE(DATE_FORMAT(order_date, '%Y-%m-%d'), '') as order_date,
			COALESCE(book_title, '') as book_title,
			COALESCE(author, '') as author,
			COALESCE(genre, '') as genre,
			quantity, price, discount, final_price, total_amount,
			COALESCE(status, '') as status,
			COALESCE(delivery_method, '') as delivery_method,
			COALESCE(order_notes, '') as order_notes
		FROM orders
		ORDER BY order_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.Date, &o.BookTitle,
			&o.Author, &o.Genre, &o.Quantity, &o.Price, &o.Discount,
			&o.FinalPrice, &o.TotalAmount, &o.Status, &o.DeliveryMethod,
			&o.Notes,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
