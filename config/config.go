package config

import (
	"os"
	"strings"

	"reviewhub/pkg/logger"
)

// Config carries the store root and server settings. It is built once in main
// and injected into the router; nothing reads the environment past this point.
type Config struct {
	DataDir string
	BaseURL string
	Addr    string
}

func Load() Config {
	cfg := Config{
		DataDir: getenv("DATA_DIR", "data"),
		BaseURL: getenv("BASE_URL", "http://localhost:8080"),
		Addr:    getenv("ADDR", ":8080"),
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Sugar.Fatalf("Failed to create data directory %s: %v", cfg.DataDir, err)
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
