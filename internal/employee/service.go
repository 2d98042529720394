package employee

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Employee {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Employee, error) {
	return s.repo.GetByID(id)
}

// Authenticate finds the employee whose PIN matches. PINs are stored
// bcrypt-hashed; the register sign-in screen sends only the PIN, so the
// roster is scanned for a matching hash.
func (s *Service) Authenticate(pin string) (Employee, error) {
	if pin == "" {
		return Employee{}, ErrInvalidPIN
	}
	for _, e := range s.repo.List() {
		if bcrypt.CompareHashAndPassword([]byte(e.PIN), []byte(pin)) == nil {
			return e, nil
		}
	}
	return Employee{}, ErrInvalidPIN
}

// HashPIN prepares a PIN for storage. Used by seeding.
func HashPIN(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
