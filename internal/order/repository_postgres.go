package order

import (
	"database/sql"
	"encoding/json"
	"time"
)

// PostgresRepository stores the ledger in an `orders` table with the line
// snapshots as jsonb. Used when DATABASE_URL is configured; the demo
// default is the in-memory ledger.
type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `order_id, items, subtotal, tax, total, payment_method, ts, employee_id, customer_age, id_verified, tip, status, tab_name`

	listOrdersQuery   = `SELECT ` + orderColumns + ` FROM orders ORDER BY ts`
	getOrderByIDQuery = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	insertOrderQuery  = `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`
	updateOrderQuery = `
		UPDATE orders
		SET items = $1,
			subtotal = $2,
			tax = $3,
			total = $4,
			payment_method = $5,
			ts = $6,
			employee_id = $7,
			customer_age = $8,
			id_verified = $9,
			tip = $10,
			status = $11,
			tab_name = $12
		WHERE order_id = $13
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	var items []byte
	var age sql.NullInt64
	var ts time.Time
	err := row.Scan(&ord.ID, &items, &ord.Subtotal, &ord.Tax, &ord.Total,
		&ord.PaymentMethod, &ts, &ord.EmployeeID, &age, &ord.IDVerified,
		&ord.Tip, &ord.Status, &ord.TabName)
	if err != nil {
		return Order{}, err
	}
	ord.Timestamp = ts
	if age.Valid {
		v := int(age.Int64)
		ord.CustomerAge = &v
	}
	if err := json.Unmarshal(items, &ord.Items); err != nil {
		return Order{}, err
	}
	return ord, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) List() []Order {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return []Order{}
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, ord)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	var age sql.NullInt64
	if ord.CustomerAge != nil {
		age = sql.NullInt64{Int64: int64(*ord.CustomerAge), Valid: true}
	}
	_, err = r.db.Exec(insertOrderQuery, ord.ID, items, ord.Subtotal, ord.Tax,
		ord.Total, ord.PaymentMethod, ord.Timestamp, ord.EmployeeID, age,
		ord.IDVerified, ord.Tip, ord.Status, ord.TabName)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Update(id string, ord Order) (Order, error) {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	var age sql.NullInt64
	if ord.CustomerAge != nil {
		age = sql.NullInt64{Int64: int64(*ord.CustomerAge), Valid: true}
	}
	res, err := r.db.Exec(updateOrderQuery, items, ord.Subtotal, ord.Tax,
		ord.Total, ord.PaymentMethod, ord.Timestamp, ord.EmployeeID, age,
		ord.IDVerified, ord.Tip, ord.Status, ord.TabName, id)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	ord.ID = id
	return ord, nil
}
