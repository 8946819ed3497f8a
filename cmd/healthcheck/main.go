package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/speccs/assetdb/internal/config"
	"github.com/speccs/assetdb/internal/database"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Confirm the API itself is accepting connections
	if err := utils.PingAPI("http://localhost:" + cfg.Port); err != nil {
		result.Status = "unhealthy"
		result.Details["api_error"] = err.Error()
	} else {
		result.Details["api"] = "ok"
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
