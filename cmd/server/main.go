package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/speccs/assetdb/internal/config"
	"github.com/speccs/assetdb/internal/database"
	"github.com/speccs/assetdb/internal/handlers"
	"github.com/speccs/assetdb/internal/middleware"

	_ "github.com/speccs/assetdb/docs/api" // Swagger docs
)

// @title AssetDB API
// @version 1.0.0
// @description CRUD backend for properties, buildings, floors, rooms, assets, connections, and the audit journal

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load .env when present; real deployments set the environment directly
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

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("assetdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	propertyHandler := &handlers.PropertyHandler{DB: db}
	buildingHandler := &handlers.BuildingHandler{DB: db}
	floorHandler := &handlers.FloorHandler{DB: db}
	roomHandler := &handlers.RoomHandler{DB: db}
	assetHandler := &handlers.AssetHandler{DB: db}
	connectionHandler := &handlers.ConnectionHandler{DB: db}
	journalHandler := &handlers.JournalHandler{DB: db}

	// Plain-text roots
	app.Get("/", healthHandler.Greeting)
	app.Get("/db_check", healthHandler.DBCheck)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	api.Get("/health", healthHandler.Health)

	api.Post("/properties", propertyHandler.CreateProperty)
	api.Get("/properties", propertyHandler.ListProperties)
	api.Get("/properties/:id", propertyHandler.GetProperty)
	api.Put("/properties/:id", propertyHandler.UpdateProperty)
	api.Delete("/properties/:id", propertyHandler.DeleteProperty)

	api.Post("/buildings", buildingHandler.CreateBuilding)
	api.Get("/buildings", buildingHandler.ListBuildings)
	api.Get("/buildings/:id", buildingHandler.GetBuilding)
	api.Put("/buildings/:id", buildingHandler.UpdateBuilding)
	api.Delete("/buildings/:id", buildingHandler.DeleteBuilding)

	api.Post("/floors", floorHandler.CreateFloor)
	api.Get("/floors", floorHandler.ListFloors)
	api.Get("/floors/:id", floorHandler.GetFloor)
	api.Put("/floors/:id", floorHandler.UpdateFloor)
	api.Delete("/floors/:id", floorHandler.DeleteFloor)

	api.Post("/rooms", roomHandler.CreateRoom)
	api.Get("/rooms", roomHandler.ListRooms)
	api.Get("/rooms/:id", roomHandler.GetRoom)
	api.Put("/rooms/:id", roomHandler.UpdateRoom)
	api.Delete("/rooms/:id", roomHandler.DeleteRoom)

	api.Post("/assets", assetHandler.CreateAsset)
	api.Get("/assets", assetHandler.ListAssets)
	api.Get("/assets/:id", assetHandler.GetAsset)
	api.Put("/assets/:id", assetHandler.UpdateAsset)
	api.Delete("/assets/:id", assetHandler.DeleteAsset)

	api.Post("/connections", connectionHandler.CreateConnections)
	api.Get("/connections", connectionHandler.ListConnections)
	api.Get("/connections/:id", connectionHandler.GetConnection)
	api.Delete("/connections/:id", connectionHandler.DeleteConnection)

	api.Get("/journal", journalHandler.ListJournal)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"error":     "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"error":     message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}
