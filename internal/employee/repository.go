package employee

import (
	"errors"
	"sync"
)

var (
	ErrNotFound   = errors.New("employee not found")
	ErrInvalidPIN = errors.New("invalid PIN")
)

type Repository interface {
	List() []Employee
	GetByID(id string) (Employee, error)
}

// InMemoryRepository holds the seeded staff roster. The demo has no
// employee management UI, so the roster is read-only after seeding.
type InMemoryRepository struct {
	mu        sync.RWMutex
	employees []Employee
}

func NewInMemoryRepository(seed []Employee) *InMemoryRepository {
	r := &InMemoryRepository{employees: make([]Employee, 0, len(seed))}
	r.employees = append(r.employees, seed...)
	return r
}

func (r *InMemoryRepository) List() []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return Employee{}, ErrNotFound
}
