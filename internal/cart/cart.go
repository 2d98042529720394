package cart

// TaxRate is the flat sales tax applied to every sale.
const TaxRate = 0.10

// LegalDrinkingAge is the minimum customer age for alcohol sales.
const LegalDrinkingAge = 21

// Item is one cart line: a value snapshot of the product taken when the
// line was added, plus a positive quantity. Holding a snapshot instead of
// a live product reference keeps later catalog edits from rewriting
// history once the line ends up on an order.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ABV       float64 `json:"abv"`
	Quantity  int     `json:"quantity"`
}

// Cart is the in-progress sale for one employee terminal. Lines keep
// insertion order. The aggregate is transient: it is reset after every
// successful checkout or tab creation.
type Cart struct {
	Items       []Item `json:"items"`
	AgeVerified bool   `json:"ageVerified"`
	CustomerAge *int   `json:"customerAge,omitempty"`
	TabName     string `json:"tabName,omitempty"`
}

// TotalItems returns the summed quantity across all lines.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns sum(price x quantity) over all lines.
func (c Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c Cart) Tax() float64 {
	return c.Subtotal() * TaxRate
}

func (c Cart) Total() float64 {
	return c.Subtotal() + c.Tax()
}

// RequiresAgeCheck reports whether any line carries alcohol, so the
// register can prompt for an ID as soon as one does. Checkout requires
// verification for every sale regardless.
func (c Cart) RequiresAgeCheck() bool {
	for _, item := range c.Items {
		if item.ABV > 0 {
			return true
		}
	}
	return false
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
