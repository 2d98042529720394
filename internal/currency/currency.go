package currency

import (
	"errors"
	"fmt"
	"sync"
)

var ErrNotFound = errors.New("currency not found")

// Currency is a display currency with a static exchange rate relative to
// the base currency (ZAR). Rates are demo fixtures; real conversion
// accuracy is out of scope.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// Currencies the register can display prices in. ZAR is the base.
var currencies = []Currency{
	{Code: "ZAR", Symbol: "R", Name: "South African Rand", Rate: 1},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Rate: 0.053},
	{Code: "EUR", Symbol: "€", Name: "Euro", Rate: 0.049},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Rate: 0.042},
}

// Store keeps the available currencies and the register's current pick.
type Store struct {
	mu      sync.RWMutex
	current Currency
}

func NewStore() *Store {
	return &Store{current: currencies[0]}
}

func (s *Store) List() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

func (s *Store) Current() Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) SetCurrent(code string) (Currency, error) {
	for _, c := range currencies {
		if c.Code == code {
			s.mu.Lock()
			s.current = c
			s.mu.Unlock()
			return c, nil
		}
	}
	return Currency{}, ErrNotFound
}

// Convert moves an amount between two currencies via the ZAR base.
func Convert(amount float64, from, to Currency) float64 {
	inBase := amount / from.Rate
	return inBase * to.Rate
}

// Format renders an amount in the store's current currency for receipts.
func (s *Store) Format(amount float64) string {
	cur := s.Current()
	return fmt.Sprintf("%s%.2f", cur.Symbol, amount)
}
