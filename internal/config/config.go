package config

import "os"

// Config holds environment-driven configuration. DatabaseURL is optional:
// when empty the app runs fully in-memory on seeded sample data.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("POS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
}
