package cart

import (
	"errors"
	"sync"
)

var ErrItemNotFound = errors.New("cart item not found")

// Store holds the in-progress cart for each employee terminal. There is
// exactly one writer per cart (the employee's session) so a single lock
// over the map is plenty.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// cartFor returns the employee's cart, creating an empty one on first use.
// Callers must hold the write lock.
func (s *Store) cartFor(employeeID string) *Cart {
	c, ok := s.carts[employeeID]
	if !ok {
		c = &Cart{Items: []Item{}}
		s.carts[employeeID] = c
	}
	return c
}

// Get returns a copy of the employee's current cart.
func (s *Store) Get(employeeID string) Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[employeeID]
	if !ok {
		return Cart{Items: []Item{}}
	}
	out := *c
	out.Items = make([]Item, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

// AddItem appends a line or, when the product is already in the cart,
// accumulates its quantity. A quantity below one counts as one.
func (s *Store) AddItem(employeeID string, item Item) Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	c := s.cartFor(employeeID)
	found := false
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		c.Items = append(c.Items, item)
	}
	s.mu.Unlock()

	return s.Get(employeeID)
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line entirely.
func (s *Store) UpdateQuantity(employeeID, productID string, quantity int) (Cart, error) {
	if quantity <= 0 {
		s.RemoveItem(employeeID, productID)
		return s.Get(employeeID), nil
	}

	s.mu.Lock()
	c := s.cartFor(employeeID)
	found := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return s.Get(employeeID), ErrItemNotFound
	}
	return s.Get(employeeID), nil
}

// RemoveItem deletes a line if present; removing an absent line is a no-op.
func (s *Store) RemoveItem(employeeID, productID string) Cart {
	s.mu.Lock()
	c := s.cartFor(employeeID)
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return s.Get(employeeID)
}

// VerifyAge records the entered age and marks the cart verified iff the
// customer is of legal drinking age. An under-age entry intentionally
// leaves the cart blocked while preserving the age for display.
func (s *Store) VerifyAge(employeeID string, age int) Cart {
	s.mu.Lock()
	c := s.cartFor(employeeID)
	c.AgeVerified = age >= LegalDrinkingAge
	c.CustomerAge = &age
	s.mu.Unlock()

	return s.Get(employeeID)
}

// ResetAgeVerification clears the verification flag and recorded age.
func (s *Store) ResetAgeVerification(employeeID string) Cart {
	s.mu.Lock()
	c := s.cartFor(employeeID)
	c.AgeVerified = false
	c.CustomerAge = nil
	s.mu.Unlock()

	return s.Get(employeeID)
}

// SetTabName stores the draft name used when the sale becomes an open tab.
func (s *Store) SetTabName(employeeID, name string) Cart {
	s.mu.Lock()
	s.cartFor(employeeID).TabName = name
	s.mu.Unlock()

	return s.Get(employeeID)
}

// Clear empties the cart and resets verification and tab-name state.
func (s *Store) Clear(employeeID string) {
	s.mu.Lock()
	s.carts[employeeID] = &Cart{Items: []Item{}}
	s.mu.Unlock()
}
