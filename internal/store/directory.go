// Package store holds the in-memory customer directory and order ledger.
// All mutation is single-threaded by design: one user operation runs to
// completion before the next begins, so there is no locking here.
package store

import (
	"strings"

	"github.com/avolkov/bookdesk/internal/models"
)

// Directory is the in-memory collection of customers. Identifiers are
// assigned monotonically and never reused within a session, even after
// deletes.
type Directory struct {
	customers []models.Customer
	nextID    int
}

func NewDirectory() *Directory {
	return &Directory{nextID: 1}
}

// Add assigns the next identifier and appends the customer. The stored
// record is returned.
func (d *Directory) Add(c models.Customer) models.Customer {
	c.ID = d.nextID
	d.nextID++
	d.customers = append(d.customers, c)
	return c
}

// Restore appends a customer that already carries an identifier, e.g.
// when rehydrating from the relational mirror, and advances the counter
// past it so later Adds cannot collide.
func (d *Directory) Restore(c models.Customer) {
	d.customers = append(d.customers, c)
	if c.ID >= d.nextID {
		d.nextID = c.ID + 1
	}
}

// All returns the customers in insertion order. The slice is a copy;
// callers may not mutate directory state through it.
func (d *Directory) All() []models.Customer {
	out := make([]models.Customer, len(d.customers))
	copy(out, d.customers)
	return out
}

func (d *Directory) Len() int {
	return len(d.customers)
}

// FindByID returns the customer with the given id. Linear scan;
// acceptable at the target scale of a few thousand rows.
func (d *Directory) FindByID(id int) (models.Customer, bool) {
	for _, c := range d.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// FindByName does a case-insensitive exact match on the trimmed full
// name. First match wins; duplicate names are permitted.
func (d *Directory) FindByName(name string) (models.Customer, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range d.customers {
		if strings.ToLower(strings.TrimSpace(c.FullName)) == want {
			return c, true
		}
	}
	return models.Customer{}, false
}

// FindByNameContains is the fuzzy fallback used by the Excel import path
// when the exact match fails: a case-insensitive substring match that
// tolerates minor formatting differences in exported name columns. It
// trades precision for recall, so nothing else should call it.
func (d *Directory) FindByNameContains(name string) (models.Customer, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return models.Customer{}, false
	}
	for _, c := range d.customers {
		have := strings.ToLower(strings.TrimSpace(c.FullName))
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Update replaces the stored record with the same id.
func (d *Directory) Update(c models.Customer) bool {
	for i := range d.customers {
		if d.customers[i].ID == c.ID {
			d.customers[i] = c
			return true
		}
	}
	return false
}

// Remove deletes the customer with the given id. Cascading order
// deletion is the Store's responsibility, not the Directory's.
func (d *Directory) Remove(id int) bool {
	for i := range d.customers {
		if d.customers[i].ID == id {
			d.customers = append(d.customers[:i], d.customers[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns customers whose name, email, phone or notes contain the
// query, case-insensitively.
func (d *Directory) Search(query string) []models.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return d.All()
	}
	var out []models.Customer
	for _, c := range d.customers {
		for _, field := range []string{c.FullName, c.Email, c.Phone, c.Notes} {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Reset drops all customers and restarts the identifier counter. Used by
// the full-replace reload path.
func (d *Directory) Reset() {
	d.customers = nil
	d.nextID = 1
}
