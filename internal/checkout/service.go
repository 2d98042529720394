package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mvandermerwe/liquor-pos-backend/internal/cart"
	"github.com/mvandermerwe/liquor-pos-backend/internal/catalog"
	"github.com/mvandermerwe/liquor-pos-backend/internal/order"
)

// Precondition failures. Every one is surfaced before the first mutation,
// so a failed checkout leaves cart, ledger and stock untouched.
var (
	ErrNoEmployee      = errors.New("no authenticated employee")
	ErrAgeNotVerified  = errors.New("age verification required")
	ErrTabNameRequired = errors.New("tab name required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidPayment  = errors.New("invalid payment method")
)

// Service coordinates a checkout across the cart, ledger and catalog:
// validate preconditions, snapshot the cart into an order, append it to
// the ledger, decrement stock, clear the cart. The clock and id generator
// are fields so tests get deterministic orders.
type Service struct {
	carts   *cart.Store
	orders  *order.Service
	catalog catalog.ServiceInterface
	now     func() time.Time
	newID   func() string
}

func NewService(carts *cart.Store, orders *order.Service, cs catalog.ServiceInterface) *Service {
	return &Service{
		carts:   carts,
		orders:  orders,
		catalog: cs,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// buildOrder snapshots the cart into an order record. The cart lines
// already hold value copies of name/price, so the receipt stays stable
// however the catalog changes afterwards.
func (s *Service) buildOrder(employeeID string, crt cart.Cart) order.Order {
	items := make([]order.Line, 0, len(crt.Items))
	for _, item := range crt.Items {
		items = append(items, order.Line{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return order.Order{
		ID:          s.newID(),
		Items:       items,
		Subtotal:    crt.Subtotal(),
		Tax:         crt.Tax(),
		Total:       crt.Total(),
		Timestamp:   s.now(),
		EmployeeID:  employeeID,
		CustomerAge: crt.CustomerAge,
		IDVerified:  crt.AgeVerified,
	}
}

func (s *Service) checkPreconditions(employeeID string, crt cart.Cart) error {
	if employeeID == "" {
		return ErrNoEmployee
	}
	if crt.IsEmpty() {
		return ErrEmptyCart
	}
	// verification is required for every sale, alcohol or not
	if !crt.AgeVerified {
		return ErrAgeNotVerified
	}
	return nil
}

// decrementStock takes the sold quantities out of the catalog, flooring
// at zero. Unknown product ids (deleted since the line was added) are
// skipped; the receipt keeps its snapshot either way.
func (s *Service) decrementStock(items []order.Line) {
	for _, line := range items {
		s.catalog.AdjustStock(line.ProductID, -line.Quantity)
	}
}

// ProcessPayment finalizes the employee's cart as a completed order.
func (s *Service) ProcessPayment(employeeID, paymentMethod string, tip float64) (order.Order, error) {
	crt := s.carts.Get(employeeID)
	if err := s.checkPreconditions(employeeID, crt); err != nil {
		return order.Order{}, err
	}
	if !order.IsAllowedPaymentMethod(paymentMethod) {
		return order.Order{}, ErrInvalidPayment
	}

	ord := s.buildOrder(employeeID, crt)
	ord.Status = order.StatusCompleted
	ord.PaymentMethod = paymentMethod
	ord.Tip = tip
	ord.Total += tip

	created, err := s.orders.Add(ord)
	if err != nil {
		return order.Order{}, err
	}
	s.decrementStock(created.Items)
	s.carts.Clear(employeeID)
	return created, nil
}

// CreateTab parks the employee's cart as an open tab. The payment method
// is a placeholder until the tab is closed. Stock is taken at tab
// creation: the drinks are poured when the tab opens, so inventory
// reflects them immediately.
func (s *Service) CreateTab(employeeID string) (order.Order, error) {
	crt := s.carts.Get(employeeID)
	if err := s.checkPreconditions(employeeID, crt); err != nil {
		return order.Order{}, err
	}
	if crt.TabName == "" {
		return order.Order{}, ErrTabNameRequired
	}

	ord := s.buildOrder(employeeID, crt)
	ord.Status = order.StatusOpenTab
	ord.PaymentMethod = "credit" // placeholder, overwritten on close
	ord.TabName = crt.TabName

	created, err := s.orders.Add(ord)
	if err != nil {
		return order.Order{}, err
	}
	s.decrementStock(created.Items)
	s.carts.Clear(employeeID)
	return created, nil
}

// CloseTab settles an open tab. No stock movement happens here.
func (s *Service) CloseTab(orderID, paymentMethod string, tip float64) (order.Order, error) {
	if !order.IsAllowedPaymentMethod(paymentMethod) {
		return order.Order{}, ErrInvalidPayment
	}
	return s.orders.CloseTab(orderID, paymentMethod, tip)
}
