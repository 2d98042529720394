package catalog

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrInvalidStock    = errors.New("stock must be >= 0")
	ErrInvalidCategory = errors.New("invalid category")
)

// Filter narrows a product listing. A zero Filter matches everything.
// Term matches case-insensitively against name and brand, or exactly
// against the barcode. Term and Category compose (AND) when both set.
type Filter struct {
	Term     string
	Category string
}

type Repository interface {
	List(f Filter) []Product
	GetByID(id string) (Product, error)
	Create(p Product) (Product, error)
	Update(id string, p Product) (Product, error)
	Delete(id string) error
	// UpdateStock sets an absolute stock value; callers compute the delta.
	UpdateStock(id string, stock int) (Product, error)
	LowStock() []Product
	// Reset replaces all products with the provided list (used for dev / seeding)
	Reset(products []Product) error
}

// InMemoryRepository is the default store for the demo: all products live
// in process, seeded from sample data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.storage = append(r.storage, p)
	}
	return r
}

func (f Filter) matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Term == "" {
		return true
	}
	term := strings.ToLower(f.Term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		p.Barcode == f.Term
}

func (r *InMemoryRepository) List(f Filter) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id string, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) UpdateStock(id string, stock int) (Product, error) {
	if stock < 0 {
		return Product{}, ErrInvalidStock
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Stock = stock
			return r.storage[i], nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) LowStock() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// Reset replaces the whole in-memory storage with the provided products.
func (r *InMemoryRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.storage = append(r.storage, p)
	}
	return nil
}
