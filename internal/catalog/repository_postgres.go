package catalog

import (
	"database/sql"

	"github.com/google/uuid"
)

// PostgresRepository persists products when DATABASE_URL is configured.
// The demo runs fully in-memory by default; this backend exists so an
// installation can survive restarts without code changes.
type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `product_id, name, category, sub_category, price, cost, stock, low_stock_threshold, barcode, image_url, description, abv, volume, brand`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR brand ILIKE '%' || $1 || '%' OR barcode = $1)
		  AND ($2 = '' OR category = $2)
		ORDER BY name
	`
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1
	`
	insertProductQuery = `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			category = $2,
			sub_category = $3,
			price = $4,
			cost = $5,
			stock = $6,
			low_stock_threshold = $7,
			barcode = $8,
			image_url = $9,
			description = $10,
			abv = $11,
			volume = $12,
			brand = $13
		WHERE product_id = $14
	`
	updateStockQuery     = `UPDATE products SET stock = $1 WHERE product_id = $2`
	deleteProductQuery   = `DELETE FROM products WHERE product_id = $1`
	lowStockQuery        = `SELECT ` + productColumns + ` FROM products WHERE stock <= low_stock_threshold ORDER BY name`
	truncateProductQuery = `DELETE FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.SubCategory, &p.Price, &p.Cost,
		&p.Stock, &p.LowStockThreshold, &p.Barcode, &p.ImageURL, &p.Description,
		&p.ABV, &p.Volume, &p.Brand)
	return p, err
}

func (r *PostgresRepository) List(f Filter) []Product {
	rows, err := r.db.Query(listProductsQuery, f.Term, f.Category)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertProductQuery, p.ID, p.Name, p.Category, p.SubCategory,
		p.Price, p.Cost, p.Stock, p.LowStockThreshold, p.Barcode, p.ImageURL,
		p.Description, p.ABV, p.Volume, p.Brand)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	res, err := r.db.Exec(updateProductQuery, p.Name, p.Category, p.SubCategory,
		p.Price, p.Cost, p.Stock, p.LowStockThreshold, p.Barcode, p.ImageURL,
		p.Description, p.ABV, p.Volume, p.Brand, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateStock(id string, stock int) (Product, error) {
	if stock < 0 {
		return Product{}, ErrInvalidStock
	}
	res, err := r.db.Exec(updateStockQuery, stock, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) LowStock() []Product {
	rows, err := r.db.Query(lowStockQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) Reset(products []Product) error {
	if _, err := r.db.Exec(truncateProductQuery); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := r.Create(p); err != nil {
			return err
		}
	}
	return nil
}
