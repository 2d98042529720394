package order

import (
	"sort"
	"time"
)

// Timeframes accepted by TotalSales.
const (
	TimeframeToday = "today"
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
)

// Service owns the ledger and derives every report from it. The clock is
// a field so tests can pin "now" for the timeframe windows.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Add appends an order to the ledger.
func (s *Service) Add(ord Order) (Order, error) {
	switch ord.Status {
	case StatusCompleted, StatusRefunded, StatusOpenTab:
	default:
		return Order{}, ErrInvalidStatus
	}
	return s.repo.Create(ord)
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() []Order {
	return s.repo.List()
}

// Update merges the non-nil fields onto an existing order. The open-tabs
// view is derived from status, so a status change synchronizes it for free.
type Update struct {
	Status        *string  `json:"status,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	Tip           *float64 `json:"tip,omitempty"`
	Total         *float64 `json:"total,omitempty"`
	TabName       *string  `json:"tabName,omitempty"`
}

func (s *Service) Update(id string, upd Update) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if upd.Status != nil {
		switch *upd.Status {
		case StatusCompleted, StatusRefunded, StatusOpenTab:
			ord.Status = *upd.Status
		default:
			return Order{}, ErrInvalidStatus
		}
	}
	if upd.PaymentMethod != nil {
		ord.PaymentMethod = *upd.PaymentMethod
	}
	if upd.Tip != nil {
		ord.Tip = *upd.Tip
	}
	if upd.Total != nil {
		ord.Total = *upd.Total
	}
	if upd.TabName != nil {
		ord.TabName = *upd.TabName
	}
	return s.repo.Update(id, ord)
}

// CloseTab settles an open tab: payment method assigned, tip added on top
// of the tab total, status flipped to completed. The order stays in the
// ledger; it simply stops appearing in the open-tabs view. Stock was
// already decremented when the tab was opened.
func (s *Service) CloseTab(id, paymentMethod string, tip float64) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if ord.Status != StatusOpenTab {
		return Order{}, ErrNotFound
	}
	ord.Status = StatusCompleted
	ord.PaymentMethod = paymentMethod
	ord.Tip = tip
	ord.Total += tip
	return s.repo.Update(id, ord)
}

// OpenTabs returns the open-tab orders in ledger order.
func (s *Service) OpenTabs() []Order {
	out := make([]Order, 0)
	for _, ord := range s.repo.List() {
		if ord.Status == StatusOpenTab {
			out = append(out, ord)
		}
	}
	return out
}

// Recent returns orders sorted by timestamp descending, truncated to limit.
func (s *Service) Recent(limit int) []Order {
	orders := s.repo.List()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Timestamp.After(orders[j].Timestamp)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}

// ByEmployee returns every order rung up by the given employee.
func (s *Service) ByEmployee(employeeID string) []Order {
	out := make([]Order, 0)
	for _, ord := range s.repo.List() {
		if ord.EmployeeID == employeeID {
			out = append(out, ord)
		}
	}
	return out
}

// TotalSales sums completed-order totals inside the timeframe window:
// today = local midnight to now, week = rolling 7 days, month = rolling
// calendar month (now minus one month, not a calendar boundary).
func (s *Service) TotalSales(timeframe string) float64 {
	now := s.now()
	var minTime time.Time
	switch timeframe {
	case TimeframeWeek:
		minTime = now.AddDate(0, 0, -7)
	case TimeframeMonth:
		minTime = now.AddDate(0, -1, 0)
	default: // today
		minTime = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	total := 0.0
	for _, ord := range s.repo.List() {
		if ord.Status == StatusCompleted && !ord.Timestamp.Before(minTime) {
			total += ord.Total
		}
	}
	return total
}

// TopProducts groups completed orders' lines by product, summing quantity
// and sale-time revenue. Sorted by quantity descending; ties break by
// product id ascending so the report is deterministic.
func (s *Service) TopProducts(limit int) []ProductSales {
	byProduct := map[string]*ProductSales{}
	for _, ord := range s.repo.List() {
		if ord.Status != StatusCompleted {
			continue
		}
		for _, line := range ord.Items {
			ps, ok := byProduct[line.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: line.ProductID, ProductName: line.Name}
				byProduct[line.ProductID] = ps
			}
			ps.Quantity += line.Quantity
			ps.Revenue += line.Price * float64(line.Quantity)
		}
	}

	out := make([]ProductSales, 0, len(byProduct))
	for _, ps := range byProduct {
		out = append(out, *ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DailySales buckets completed orders by local calendar day over the last
// `days` days, oldest first. Empty days are present with zero totals so a
// bar chart gets a full axis.
func (s *Service) DailySales(days int) []DailySales {
	if days <= 0 {
		days = 7
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	buckets := make([]DailySales, days)
	index := map[string]int{}
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1)
		key := day.Format("2006-01-02")
		buckets[i] = DailySales{Date: key}
		index[key] = i
	}

	for _, ord := range s.repo.List() {
		if ord.Status != StatusCompleted {
			continue
		}
		key := ord.Timestamp.In(now.Location()).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		buckets[i].Total += ord.Total
		buckets[i].Transactions++
		for _, line := range ord.Items {
			buckets[i].ItemsSold += line.Quantity
		}
	}
	return buckets
}
