package cart

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func ipa() Item {
	return Item{ProductID: "1", Name: "IPA Craft Beer", Price: 5.99, ABV: 6.2}
}

func tonic() Item {
	return Item{ProductID: "10", Name: "Tonic Water", Price: 3.99, ABV: 0}
}

func TestTotals_SampleOrder(t *testing.T) {
	// 2x IPA ($5.99) + 1x tonic ($3.99) is the canonical sample sale
	s := NewStore()
	s.AddItem("emp", Item{ProductID: "1", Name: "IPA Craft Beer", Price: 5.99, ABV: 6.2, Quantity: 2})
	s.AddItem("emp", tonic())

	crt := s.Get("emp")
	if !almostEqual(crt.Subtotal(), 15.97) {
		t.Fatalf("expected subtotal 15.97, got %v", crt.Subtotal())
	}
	if !almostEqual(crt.Tax(), 1.597) {
		t.Fatalf("expected tax 1.597, got %v", crt.Tax())
	}
	if !almostEqual(crt.Total(), 17.567) {
		t.Fatalf("expected total 17.567, got %v", crt.Total())
	}
}

func TestAddItem_AccumulatesQuantity(t *testing.T) {
	s := NewStore()
	s.AddItem("emp", ipa())
	crt := s.AddItem("emp", Item{ProductID: "1", Name: "IPA Craft Beer", Price: 5.99, ABV: 6.2, Quantity: 2})

	if len(crt.Items) != 1 {
		t.Fatalf("expected a single line, got %d", len(crt.Items))
	}
	if crt.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3 after accumulation, got %d", crt.Items[0].Quantity)
	}
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	s := NewStore()
	crt := s.AddItem("emp", Item{ProductID: "1", Price: 5.99})
	if crt.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", crt.Items[0].Quantity)
	}
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddItem("emp", ipa())
	s.AddItem("emp", tonic())
	s.AddItem("emp", ipa())

	crt := s.Get("emp")
	if crt.Items[0].ProductID != "1" || crt.Items[1].ProductID != "10" {
		t.Fatalf("expected insertion order [1, 10], got %+v", crt.Items)
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	s.AddItem("emp", ipa())

	crt, err := s.UpdateQuantity("emp", "1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crt.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", crt.Items[0].Quantity)
	}

	// zero or negative removes the line entirely
	crt, err = s.UpdateQuantity("emp", "1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !crt.IsEmpty() {
		t.Fatalf("expected empty cart after zero-quantity update, got %+v", crt.Items)
	}

	// updating an absent line reports it
	if _, err := s.UpdateQuantity("emp", "nope", 2); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem("emp", ipa())
	crt := s.RemoveItem("emp", "does-not-exist")
	if len(crt.Items) != 1 {
		t.Fatalf("expected cart unchanged, got %+v", crt.Items)
	}
}

func TestSubtotalMatchesLineSum(t *testing.T) {
	s := NewStore()
	s.AddItem("emp", Item{ProductID: "a", Price: 1.25, Quantity: 3})
	s.AddItem("emp", Item{ProductID: "b", Price: 9.99, Quantity: 2})
	s.RemoveItem("emp", "a")
	s.AddItem("emp", Item{ProductID: "c", Price: 0.50, Quantity: 4})
	s.UpdateQuantity("emp", "b", 1)

	crt := s.Get("emp")
	want := 0.0
	for _, item := range crt.Items {
		want += item.Price * float64(item.Quantity)
	}
	if !almostEqual(crt.Subtotal(), want) {
		t.Fatalf("subtotal %v does not match line sum %v", crt.Subtotal(), want)
	}
	if !almostEqual(crt.Tax(), want*TaxRate) {
		t.Fatalf("tax %v does not match subtotal x rate %v", crt.Tax(), want*TaxRate)
	}
	if !almostEqual(crt.Total(), crt.Subtotal()+crt.Tax()) {
		t.Fatalf("total %v is not subtotal+tax", crt.Total())
	}
}

func TestVerifyAge(t *testing.T) {
	cases := []struct {
		age      int
		verified bool
	}{
		{20, false},
		{21, true},
		{65, true},
	}
	for _, tc := range cases {
		s := NewStore()
		crt := s.VerifyAge("emp", tc.age)
		if crt.AgeVerified != tc.verified {
			t.Errorf("age %d: expected verified=%v, got %v", tc.age, tc.verified, crt.AgeVerified)
		}
		// the raw age is preserved either way, for display/audit
		if crt.CustomerAge == nil || *crt.CustomerAge != tc.age {
			t.Errorf("age %d: expected recorded age, got %v", tc.age, crt.CustomerAge)
		}
	}
}

func TestRequiresAgeCheck(t *testing.T) {
	s := NewStore()
	s.AddItem("emp", tonic())
	if s.Get("emp").RequiresAgeCheck() {
		t.Fatal("mixers-only cart should not require an age check")
	}
	s.AddItem("emp", ipa())
	if !s.Get("emp").RequiresAgeCheck() {
		t.Fatal("cart with alcohol should require an age check")
	}
}

func TestClear_ResetsEverything(t *testing.T) {
	s := NewStore()
	s.AddItem("emp", ipa())
	s.VerifyAge("emp", 30)
	s.SetTabName("emp", "Table 5")

	s.Clear("emp")
	crt := s.Get("emp")
	if !crt.IsEmpty() || crt.AgeVerified || crt.CustomerAge != nil || crt.TabName != "" {
		t.Fatalf("expected fully reset cart, got %+v", crt)
	}
}

func TestCartsAreIsolatedPerEmployee(t *testing.T) {
	s := NewStore()
	s.AddItem("a", ipa())
	if !s.Get("b").IsEmpty() {
		t.Fatal("employee b should start with an empty cart")
	}
	s.Clear("b")
	if s.Get("a").IsEmpty() {
		t.Fatal("clearing b must not touch a's cart")
	}
}
