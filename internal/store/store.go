package store

import (
	"errors"
	"fmt"

	"github.com/avolkov/bookdesk/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// Store owns the directory and ledger together and enforces the one
// cross-collection invariant: every order's customer id resolves in the
// directory, or the order no longer exists.
type Store struct {
	Customers *Directory
	Orders    *Ledger
}

func New() *Store {
	return &Store{
		Customers: NewDirectory(),
		Orders:    NewLedger(),
	}
}

// AddCustomer appends a customer and returns the stored record with its
// assigned id.
func (s *Store) AddCustomer(c models.Customer) models.Customer {
	return s.Customers.Add(c)
}

// UpdateCustomer replaces all mutable fields of an existing customer.
func (s *Store) UpdateCustomer(c models.Customer) error {
	if !s.Customers.Update(c) {
		return fmt.Errorf("update customer %d: %w", c.ID, ErrCustomerNotFound)
	}
	return nil
}

// DeleteCustomer removes the customer and all of its orders as one
// logical operation; no partial state is observable afterwards. It
// reports how many orders were cascaded away.
func (s *Store) DeleteCustomer(id int) (int, error) {
	if _, ok := s.Customers.FindByID(id); !ok {
		return 0, fmt.Errorf("delete customer %d: %w", id, ErrCustomerNotFound)
	}
	removed := s.Orders.RemoveByCustomer(id)
	s.Customers.Remove(id)
	return removed, nil
}

// AddOrder validates the customer reference, assigns an id when the
// order has none, recomputes the derived pricing fields and appends.
func (s *Store) AddOrder(o models.Order) (models.Order, error) {
	c, ok := s.Customers.FindByID(o.CustomerID)
	if !ok {
		return models.Order{}, fmt.Errorf("add order for customer %d: %w", o.CustomerID, ErrCustomerNotFound)
	}
	if o.ID == "" {
		o.ID = s.Orders.NextID()
	}
	o.CustomerName = c.FullName
	o.ComputeDerived()
	s.Orders.Add(o)
	return o, nil
}

// UpdateOrder replaces an existing order, recomputing derived fields.
// The customer reference must still resolve.
func (s *Store) UpdateOrder(o models.Order) error {
	if _, ok := s.Customers.FindByID(o.CustomerID); !ok {
		return fmt.Errorf("update order %s: %w", o.ID, ErrCustomerNotFound)
	}
	o.ComputeDerived()
	if !s.Orders.Update(o) {
		return fmt.Errorf("update order %s: %w", o.ID, ErrOrderNotFound)
	}
	return nil
}

// DeleteOrder removes one order by id.
func (s *Store) DeleteOrder(id string) error {
	if !s.Orders.Remove(id) {
		return fmt.Errorf("delete order %s: %w", id, ErrOrderNotFound)
	}
	return nil
}

// Reset drops everything and restarts both identifier counters.
func (s *Store) Reset() {
	s.Customers.Reset()
	s.Orders.Reset()
}
