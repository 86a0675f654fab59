package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rmacedo/hoje-e-onde/internal/logging"
	"github.com/rmacedo/hoje-e-onde/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := logging.Init(os.Getenv("APP_ENV")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	if err := server.Start(); err != nil {
		logging.L().Fatal("server failed to start", zap.Error(err))
	}
}
