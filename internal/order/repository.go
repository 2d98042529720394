package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// Repository is the order ledger. Orders are appended for their whole
// lifetime; the only mutation is a field merge via Update (tab close,
// refund marking). Nothing is ever deleted.
type Repository interface {
	List() []Order
	GetByID(id string) (Order, error)
	Create(ord Order) (Order, error)
	Update(id string, ord Order) (Order, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{orders: make([]Order, 0, len(seed))}
	r.orders = append(r.orders, seed...)
	return r
}

func (r *InMemoryRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) Update(id string, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			ord.ID = id
			r.orders[i] = ord
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}
