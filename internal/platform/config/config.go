package config

import (
	"os"

	"github.com/joho/godotenv"

	"pet-care-tracker/internal/platform/timezone"
)

// Config agrupa toda la configuración de proceso. Se carga una sola vez en
// main y se inyecta; nada del resto del código lee env vars directamente.
type Config struct {
	Port string

	// Si DBDSN viene, se usa Postgres. Si no, SQLite local en SQLitePath.
	DBDSN      string
	SQLitePath string

	ReferenceTZ string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env (si existe) y luego el environment, con defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        envOr("PORT", "8080"),
		DBDSN:       os.Getenv("DB_DSN"),
		SQLitePath:  envOr("SQLITE_PATH", "data/petcare.db"),
		ReferenceTZ: envOr("REFERENCE_TZ", timezone.DefaultZone),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		LogFormat:   envOr("LOG_FORMAT", "text"),
		AppName:     envOr("APP_NAME", "pet-care-tracker"),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
