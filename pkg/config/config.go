package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DataDir       string
	LegacyDir     string
	LegacyExec    string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	CORSOrigins   string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "4000"),
		DataDir:       getEnv("DATA_DIR", "data"),
		LegacyDir:     os.Getenv("LEGACY_DIR"),
		LegacyExec:    getEnv("LEGACY_EXEC", "incollege"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "incollege"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
	// The legacy executable historically lives next to the record files.
	if cfg.LegacyDir == "" {
		cfg.LegacyDir = cfg.DataDir
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
