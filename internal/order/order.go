package order

import "time"

// Order statuses. An open tab may transition to completed exactly once;
// completed and refunded are terminal.
const (
	StatusCompleted = "completed"
	StatusRefunded  = "refunded"
	StatusOpenTab   = "open-tab"
)

// AllowedPaymentMethods contains the payment methods the register accepts.
var AllowedPaymentMethods = []string{"cash", "credit", "debit", "mobile"}

func IsAllowedPaymentMethod(method string) bool {
	for _, m := range AllowedPaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

// Line is a sold item as it appeared at sale time. Name and price are
// copied out of the catalog when the order is built, so later catalog
// edits never rewrite a receipt.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is a finalized transaction or an open tab held in the ledger.
type Order struct {
	ID            string    `json:"orderId"`
	Items         []Line    `json:"items"`
	Subtotal      float64   `json:"subtotal"`
	Tax           float64   `json:"tax"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	Timestamp     time.Time `json:"timestamp"`
	EmployeeID    string    `json:"employeeId"`
	CustomerAge   *int      `json:"customerAge,omitempty"`
	IDVerified    bool      `json:"idVerified"`
	Tip           float64   `json:"tip,omitempty"`
	Status        string    `json:"status"`
	TabName       string    `json:"tabName,omitempty"`
}

// ProductSales is one row of the top-sellers report.
type ProductSales struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// DailySales is one day bucket of the sales chart.
type DailySales struct {
	Date         string  `json:"date"`
	Total        float64 `json:"total"`
	ItemsSold    int     `json:"itemsSold"`
	Transactions int     `json:"transactions"`
}
