package catalog

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productRows = []string{"product_id", "name", "category", "sub_category", "price", "cost", "stock", "low_stock_threshold", "barcode", "image_url", "description", "abv", "volume", "brand"}

func TestPostgresList_Filter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productRows).
		AddRow("1", "IPA Craft Beer", "beer", "IPA", 5.99, 2.50, 48, 10, "123456789012", "", "Hoppy", 6.2, "12oz", "Craft Brewery Co.")
	mock.ExpectQuery("SELECT (.+) FROM products").WithArgs("ipa", "beer").WillReturnRows(rows)

	products := repo.List(Filter{Term: "ipa", Category: "beer"})
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Name != "IPA Craft Beer" {
		t.Fatalf("unexpected product name %q", products[0].Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products").WithArgs("404").WillReturnRows(sqlmock.NewRows(productRows))

	if _, err := repo.GetByID("404"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE products SET stock").WithArgs(5, "1").WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows(productRows).
		AddRow("1", "IPA Craft Beer", "beer", "IPA", 5.99, 2.50, 5, 10, "123456789012", "", "Hoppy", 6.2, "12oz", "Craft Brewery Co.")
	mock.ExpectQuery("FROM products").WithArgs("1").WillReturnRows(rows)

	p, err := repo.UpdateStock("1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stock != 5 {
		t.Fatalf("expected stock 5, got %d", p.Stock)
	}

	// negative absolute stock is rejected before touching the database
	if _, err := repo.UpdateStock("1", -2); err != ErrInvalidStock {
		t.Fatalf("expected ErrInvalidStock, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStock_MissingProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE products SET stock").WithArgs(5, "404").WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.UpdateStock("404", 5); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresDelete_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").WithArgs("1").WillReturnError(errors.New("boom"))

	if err := repo.Delete("1"); err == nil {
		t.Fatal("expected error to propagate")
	}
}
