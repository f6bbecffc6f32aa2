package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"reviewhub/config"
	"reviewhub/pkg/logger"
	"reviewhub/router"
)

func main() {
	// Load .env file
	err := godotenv.Load()

	logger.Init()
	defer logger.Log.Sync()

	if err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	cfg := config.Load()
	handler := router.Setup(cfg)

	logger.Sugar.Infof("reviewhub listening on %s (data dir %s)", cfg.Addr, cfg.DataDir)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
