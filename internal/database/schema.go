package database

// SetupMirrorSchema creates the relational mirror tables. Orders
// reference customers with a cascading delete so the mirror keeps the
// same no-orphan invariant as the in-memory store.
func (db *DB) SetupMirrorSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
		    id BIGINT PRIMARY KEY,
		    full_name VARCHAR(255) NOT NULL,
		    contact_info VARCHAR(255),
		    email VARCHAR(255),
		    phone VARCHAR(64),
		    registration_date DATE,
		    notes TEXT,
		    INDEX idx_full_name (full_name),
		    INDEX idx_registration_date (registration_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id VARCHAR(16) PRIMARY KEY,
		    customer_id BIGINT NOT NULL,
		    customer_name VARCHAR(255),
		    order_date DATE,
		    book_title VARCHAR(255),
		    author VARCHAR(255),
		    genre VARCHAR(100),
		    quantity INT NOT NULL DEFAULT 1,
		    price DECIMAL(10,2) NOT NULL DEFAULT 0,
		    discount DOUBLE NOT NULL DEFAULT 0,
		    final_price DECIMAL(10,2) NOT NULL DEFAULT 0,
		    total_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
		    status VARCHAR(64),
		    delivery_method VARCHAR(128),
		    order_notes TEXT,
		    FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE,
		    INDEX idx_customer_id (customer_id),
		    INDEX idx_order_date (order_date),
		    INDEX idx_status (status)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// CleanupMirrorData removes all mirrored rows (but keeps schema)
func (db *DB) CleanupMirrorData() error {
	queries := []string{
		"DELETE FROM orders",
		"DELETE FROM customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// DropMirrorSchema removes the mirror tables
func (db *DB) DropMirrorSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
