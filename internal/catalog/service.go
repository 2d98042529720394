package catalog

// ServiceInterface lets collaborators (checkout, tests) depend on the
// catalog without pulling in a concrete repository.
type ServiceInterface interface {
	GetByID(id string) (Product, error)
	AdjustStock(id string, delta int) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List(Filter{})
}

// Search filters by free-text term and/or category; both compose (AND).
func (s *Service) Search(term, category string) []Product {
	return s.repo.List(Filter{Term: term, Category: category})
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	if !IsAllowedCategory(p.Category) {
		return Product{}, ErrInvalidCategory
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Product) (Product, error) {
	if !IsAllowedCategory(p.Category) {
		return Product{}, ErrInvalidCategory
	}
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// UpdateStock sets an absolute stock value. Negative values are rejected.
func (s *Service) UpdateStock(id string, stock int) (Product, error) {
	return s.repo.UpdateStock(id, stock)
}

// AdjustStock applies a delta to the current stock, clamping at zero.
// Sales never record oversell: a decrement past zero floors the count.
func (s *Service) AdjustStock(id string, delta int) (Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	stock := p.Stock + delta
	if stock < 0 {
		stock = 0
	}
	return s.repo.UpdateStock(id, stock)
}

func (s *Service) LowStock() []Product {
	return s.repo.LowStock()
}

// ResetProducts replaces all products with the given list (used for dev / seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
