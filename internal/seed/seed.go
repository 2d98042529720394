// Package seed holds the demo fixtures the in-memory stores boot from.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/mvandermerwe/liquor-pos-backend/internal/catalog"
	"github.com/mvandermerwe/liquor-pos-backend/internal/employee"
	"github.com/mvandermerwe/liquor-pos-backend/internal/order"
)

// Products returns the sample catalog.
func Products() []catalog.Product {
	return []catalog.Product{
		{
			ID: "1", Name: "IPA Craft Beer", Category: "beer", SubCategory: "IPA",
			Price: 5.99, Cost: 2.50, Stock: 48, LowStockThreshold: 10,
			Barcode: "123456789012", Description: "Hoppy craft IPA with citrus notes",
			ABV: 6.2, Volume: "12oz", Brand: "Craft Brewery Co.",
		},
		{
			ID: "2", Name: "Light Lager", Category: "beer", SubCategory: "Lager",
			Price: 4.99, Cost: 1.75, Stock: 72, LowStockThreshold: 15,
			Barcode: "223456789012", Description: "Refreshing light lager",
			ABV: 4.2, Volume: "12oz", Brand: "American Beer Co.",
		},
		{
			ID: "3", Name: "Stout", Category: "beer", SubCategory: "Stout",
			Price: 6.99, Cost: 3.25, Stock: 36, LowStockThreshold: 8,
			Barcode: "323456789012", Description: "Rich, dark stout with coffee notes",
			ABV: 7.5, Volume: "16oz", Brand: "Dark Brew Ltd.",
		},
		{
			ID: "4", Name: "Cabernet Sauvignon", Category: "wine", SubCategory: "Red",
			Price: 24.99, Cost: 12.50, Stock: 24, LowStockThreshold: 5,
			Barcode: "423456789012", Description: "Full-bodied red wine with blackberry notes",
			ABV: 14.5, Volume: "750ml", Brand: "Napa Valley Vineyards",
		},
		{
			ID: "5", Name: "Chardonnay", Category: "wine", SubCategory: "White",
			Price: 19.99, Cost: 9.75, Stock: 18, LowStockThreshold: 4,
			Barcode: "523456789012", Description: "Crisp white wine with apple and pear notes",
			ABV: 13.2, Volume: "750ml", Brand: "Sonoma Wines",
		},
		{
			ID: "6", Name: "Rosé", Category: "wine", SubCategory: "Rosé",
			Price: 16.99, Cost: 7.50, Stock: 12, LowStockThreshold: 3,
			Barcode: "623456789012", Description: "Refreshing rosé with strawberry notes",
			ABV: 12.5, Volume: "750ml", Brand: "Provence Estates",
		},
		{
			ID: "7", Name: "Bourbon Whiskey", Category: "spirits", SubCategory: "Whiskey",
			Price: 39.99, Cost: 22.00, Stock: 10, LowStockThreshold: 2,
			Barcode: "723456789012", Description: "Smooth bourbon with vanilla and caramel notes",
			ABV: 45.0, Volume: "750ml", Brand: "Kentucky Spirits",
		},
		{
			ID: "8", Name: "Vodka", Category: "spirits", SubCategory: "Vodka",
			Price: 29.99, Cost: 14.50, Stock: 15, LowStockThreshold: 3,
			Barcode: "823456789012", Description: "Premium distilled vodka, triple filtered",
			ABV: 40.0, Volume: "750ml", Brand: "Crystal Clear",
		},
		{
			ID: "9", Name: "Gin", Category: "spirits", SubCategory: "Gin",
			Price: 34.99, Cost: 18.25, Stock: 8, LowStockThreshold: 2,
			Barcode: "923456789012", Description: "London dry gin with botanical notes",
			ABV: 42.0, Volume: "750ml", Brand: "British Distillery",
		},
		{
			ID: "10", Name: "Tonic Water", Category: "mixers", SubCategory: "Soda",
			Price: 3.99, Cost: 1.25, Stock: 36, LowStockThreshold: 10,
			Barcode: "023456789013", Description: "Premium tonic water",
			ABV: 0, Volume: "500ml", Brand: "Mixer Co.",
		},
	}
}

// Employees returns the staff roster with bcrypt-hashed PINs.
func Employees() ([]employee.Employee, error) {
	roster := []struct {
		id, name, role, pin, email string
	}{
		{"1", "Admin User", employee.RoleAdmin, "1234", "admin@alcopos.com"},
		{"2", "Manager User", employee.RoleManager, "2345", "manager@alcopos.com"},
		{"3", "Cashier User", employee.RoleCashier, "3456", "cashier@alcopos.com"},
		{"4", "Bartender", employee.RoleBartender, "4567", "bartender@alcopos.com"},
	}

	out := make([]employee.Employee, 0, len(roster))
	for _, r := range roster {
		hashed, err := employee.HashPIN(r.pin)
		if err != nil {
			return nil, err
		}
		out = append(out, employee.Employee{
			ID: r.id, Name: r.name, Role: r.role, PIN: hashed, Email: r.email,
		})
	}
	return out, nil
}

func intPtr(v int) *int { return &v }

// Orders returns a small sales history so reports render non-empty on a
// fresh boot: a few completed sales plus one open tab.
func Orders() []order.Order {
	now := time.Now()
	products := Products()
	line := func(i, qty int) order.Line {
		p := products[i]
		return order.Line{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: qty}
	}

	return []order.Order{
		{
			ID:            uuid.NewString(),
			Items:         []order.Line{line(0, 2), line(9, 1)},
			Subtotal:      15.97, Tax: 1.60, Total: 17.57,
			PaymentMethod: "credit",
			Timestamp:     now.Add(-1 * time.Hour),
			EmployeeID:    "3",
			CustomerAge:   intPtr(28), IDVerified: true,
			Status:        order.StatusCompleted,
		},
		{
			ID:            uuid.NewString(),
			Items:         []order.Line{line(3, 1)},
			Subtotal:      24.99, Tax: 2.50, Total: 27.49,
			PaymentMethod: "cash",
			Timestamp:     now.Add(-2 * time.Hour),
			EmployeeID:    "3",
			CustomerAge:   intPtr(35), IDVerified: true,
			Status:        order.StatusCompleted,
		},
		{
			ID:            uuid.NewString(),
			Items:         []order.Line{line(6, 1), line(9, 2)},
			Subtotal:      47.97, Tax: 4.80, Total: 52.77,
			PaymentMethod: "credit",
			Timestamp:     now.Add(-24 * time.Hour),
			EmployeeID:    "4",
			CustomerAge:   intPtr(42), IDVerified: true,
			Tip:           5.00,
			Status:        order.StatusCompleted,
		},
		{
			ID:            uuid.NewString(),
			Items:         []order.Line{line(1, 6)},
			Subtotal:      29.94, Tax: 3.00, Total: 32.94,
			PaymentMethod: "credit",
			Timestamp:     now.Add(-48 * time.Hour),
			EmployeeID:    "3",
			CustomerAge:   intPtr(26), IDVerified: true,
			Status:        order.StatusCompleted,
		},
		{
			ID:            uuid.NewString(),
			Items:         []order.Line{line(7, 1), line(9, 2)},
			Subtotal:      37.97, Tax: 3.80, Total: 41.77,
			PaymentMethod: "credit",
			Timestamp:     now,
			EmployeeID:    "4",
			CustomerAge:   intPtr(31), IDVerified: true,
			TabName:       "John's Tab",
			Status:        order.StatusOpenTab,
		},
	}
}
