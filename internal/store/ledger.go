package store

import (
	"fmt"

	"github.com/avolkov/bookdesk/internal/models"
)

// Ledger is the in-memory collection of orders.
type Ledger struct {
	orders  []models.Order
	nextSeq int
}

func NewLedger() *Ledger {
	return &Ledger{nextSeq: 1}
}

// OrderStats are the derived per-customer order figures. A customer with
// no orders gets zeros and an empty MostRecentDate; that is not an error.
type OrderStats struct {
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"total_amount"`
	AverageAmount  float64 `json:"average_amount"`
	MostRecentDate string  `json:"most_recent_date,omitempty"`
}

// NextID mints the next order identifier in the ORD### format. The
// counter only increments, also when the caller ends up discarding the
// id, so identifiers are never reused.
func (l *Ledger) NextID() string {
	id := fmt.Sprintf("ORD%03d", l.nextSeq)
	l.nextSeq++
	return id
}

// Add appends an order. Referential validity against the directory is
// checked by the Store, not here. When the order carries a
// source-supplied ORD### id, the counter is advanced past it so later
// generated ids cannot collide.
func (l *Ledger) Add(o models.Order) {
	l.orders = append(l.orders, o)
	var n int
	if _, err := fmt.Sscanf(o.ID, "ORD%d", &n); err == nil && n >= l.nextSeq {
		l.nextSeq = n + 1
	}
}

// All returns the orders in insertion order, as a copy.
func (l *Ledger) All() []models.Order {
	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Ledger) Len() int {
	return len(l.orders)
}

// ByCustomer filters orders for one customer, preserving insertion order
// (which is not necessarily date order).
func (l *Ledger) ByCustomer(customerID int) []models.Order {
	var out []models.Order
	for _, o := range l.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// FindByID returns the order with the given identifier.
func (l *Ledger) FindByID(id string) (models.Order, bool) {
	for _, o := range l.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Statistics computes count, total, average and most recent order date
// for one customer. Dates are normalized YYYY-MM-DD strings, so the
// maximum under lexicographic comparison is the most recent.
func (l *Ledger) Statistics(customerID int) OrderStats {
	var stats OrderStats
	for _, o := range l.orders {
		if o.CustomerID != customerID {
			continue
		}
		stats.Count++
		stats.TotalAmount += o.TotalAmount
		if o.Date > stats.MostRecentDate {
			stats.MostRecentDate = o.Date
		}
	}
	if stats.Count > 0 {
		stats.AverageAmount = stats.TotalAmount / float64(stats.Count)
	}
	return stats
}

// Update replaces the stored order with the same id.
func (l *Ledger) Update(o models.Order) bool {
	for i := range l.orders {
		if l.orders[i].ID == o.ID {
			l.orders[i] = o
			return true
		}
	}
	return false
}

// Remove deletes one order by id.
func (l *Ledger) Remove(id string) bool {
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByCustomer deletes every order owned by the customer and reports
// how many were removed. Used by the cascade delete.
func (l *Ledger) RemoveByCustomer(customerID int) int {
	kept := l.orders[:0]
	removed := 0
	for _, o := range l.orders {
		if o.CustomerID == customerID {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	l.orders = kept
	return removed
}

// Reset drops all orders and restarts the identifier counter.
func (l *Ledger) Reset() {
	l.orders = nil
	l.nextSeq = 1
}
