// Package config loads application settings from environment variables.
// Command line flags in cmd/shoplist take precedence over these values.
package config

import "os"

// Config holds the runtime settings of the application.
type Config struct {
	Addr      string // HTTP listen address
	DBPath    string // SQLite database file
	StaticDir string // directory with the built frontend
	Locale    string // BCP 47 tag used for collation in sorted views
}

// Load reads configuration from the environment, applying defaults. The
// default locale matches the Hebrew UI the frontend ships with.
func Load() Config {
	return Config{
		Addr:      envOrDefault("SHOPLIST_ADDR", ":8080"),
		DBPath:    envOrDefault("SHOPLIST_DB_PATH", "data/shoplist.db"),
		StaticDir: envOrDefault("SHOPLIST_STATIC_DIR", "web/dist"),
		Locale:    envOrDefault("SHOPLIST_LOCALE", "he"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
