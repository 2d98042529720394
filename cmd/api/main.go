package main

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/mvandermerwe/liquor-pos-backend/internal/cart"
	"github.com/mvandermerwe/liquor-pos-backend/internal/catalog"
	"github.com/mvandermerwe/liquor-pos-backend/internal/checkout"
	"github.com/mvandermerwe/liquor-pos-backend/internal/config"
	"github.com/mvandermerwe/liquor-pos-backend/internal/currency"
	"github.com/mvandermerwe/liquor-pos-backend/internal/employee"
	"github.com/mvandermerwe/liquor-pos-backend/internal/order"
	"github.com/mvandermerwe/liquor-pos-backend/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	// repositories: in-memory seeded demo stores by default, Postgres for
	// catalog and ledger when DATABASE_URL is set
	var catalogRepo catalog.Repository
	var orderRepo order.Repository
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		ensureSchema(db)
		catalogRepo = catalog.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
	} else {
		catalogRepo = catalog.NewInMemoryRepository(seed.Products())
		orderRepo = order.NewInMemoryRepository(seed.Orders())
	}

	employees, err := seed.Employees()
	if err != nil {
		panic(err)
	}

	employeeService := employee.NewService(employee.NewInMemoryRepository(employees))
	catalogService := catalog.NewService(catalogRepo)
	orderService := order.NewService(orderRepo)
	cartStore := cart.NewStore()
	checkoutService := checkout.NewService(cartStore, orderService, catalogService)
	currencyStore := currency.NewStore()

	employeeHandler := employee.NewHandler(employeeService)
	catalogHandler := catalog.NewHandler(catalogService, seed.Products())
	cartHandler := cart.NewHandler(cartStore, catalogService)
	orderHandler := order.NewHandler(orderService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	currencyHandler := currency.NewHandler(currencyStore)

	// public routes go before the JWT middleware
	employeeHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	currencyHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	employeeHandler.RegisterProtectedRoutes(app)
	catalogHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	currencyHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// ensureSchema creates the tables a fresh database needs. Seeding is left
// to the dev reset endpoints; an empty catalog is valid.
func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			product_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			sub_category TEXT NOT NULL DEFAULT '',
			price numeric NOT NULL DEFAULT 0,
			cost numeric NOT NULL DEFAULT 0,
			stock INT NOT NULL DEFAULT 0,
			low_stock_threshold INT NOT NULL DEFAULT 0,
			barcode TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			abv numeric NOT NULL DEFAULT 0,
			volume TEXT NOT NULL DEFAULT '',
			brand TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			items jsonb NOT NULL DEFAULT '[]',
			subtotal numeric NOT NULL DEFAULT 0,
			tax numeric NOT NULL DEFAULT 0,
			total numeric NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL DEFAULT '',
			ts timestamptz NOT NULL,
			employee_id TEXT NOT NULL,
			customer_age INT,
			id_verified BOOLEAN NOT NULL DEFAULT FALSE,
			tip numeric NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			tab_name TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			fmt.Printf("warning: schema setup failed: %v\n", err)
		}
	}
}
