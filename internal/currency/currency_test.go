package currency

import (
	"math"
	"testing"
)

func TestSetCurrent(t *testing.T) {
	store := NewStore()
	if store.Current().Code != "ZAR" {
		t.Fatalf("expected ZAR default, got %q", store.Current().Code)
	}

	cur, err := store.SetCurrent("USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur.Symbol != "$" || store.Current().Code != "USD" {
		t.Fatalf("switch to USD did not stick: %+v", store.Current())
	}

	if _, err := store.SetCurrent("BTC"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// a failed switch keeps the previous selection
	if store.Current().Code != "USD" {
		t.Fatalf("current changed after failed switch: %q", store.Current().Code)
	}
}

func TestConvert(t *testing.T) {
	var zar, usd Currency
	for _, c := range NewStore().List() {
		switch c.Code {
		case "ZAR":
			zar = c
		case "USD":
			usd = c
		}
	}

	got := Convert(100, zar, usd)
	if math.Abs(got-5.3) > 1e-9 {
		t.Fatalf("expected 5.3, got %v", got)
	}
	// round trip through the base currency
	back := Convert(got, usd, zar)
	if math.Abs(back-100) > 1e-9 {
		t.Fatalf("round trip drifted: %v", back)
	}
}

func TestFormat(t *testing.T) {
	store := NewStore()
	if got := store.Format(17.567); got != "R17.57" {
		t.Fatalf("expected R17.57, got %q", got)
	}
	store.SetCurrent("GBP")
	if got := store.Format(5); got != "£5.00" {
		t.Fatalf("expected £5.00, got %q", got)
	}
}
