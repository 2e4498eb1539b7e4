package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server's environment-driven settings.
type Config struct {
	Addr      string // listen address, SALES_API_ADDR
	DBPath    string // sqlite database path, SALES_DB_PATH
	OutputDir string // base directory for run outputs, SALES_OUTPUT_DIR
}

// Load reads configuration from the environment, preferring a .env file
// when one exists.
func Load() Config {
	// Overload so a .env file wins over stale shell exports during
	// development; absence of the file is not an error.
	_ = godotenv.Overload()

	return Config{
		Addr:      envOr("SALES_API_ADDR", ":8080"),
		DBPath:    envOr("SALES_DB_PATH", "sales.db"),
		OutputDir: envOr("SALES_OUTPUT_DIR", "outputs"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
