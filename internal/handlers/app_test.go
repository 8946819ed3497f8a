package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/database"
	"github.com/speccs/assetdb/internal/handlers"
	"github.com/speccs/assetdb/internal/middleware"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires the full route surface against an in-memory database.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	app := fiber.New()

	propertyHandler := &handlers.PropertyHandler{DB: db}
	buildingHandler := &handlers.BuildingHandler{DB: db}
	floorHandler := &handlers.FloorHandler{DB: db}
	roomHandler := &handlers.RoomHandler{DB: db}
	assetHandler := &handlers.AssetHandler{DB: db}
	connectionHandler := &handlers.ConnectionHandler{DB: db}
	journalHandler := &handlers.JournalHandler{DB: db}

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

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

	return app, db
}

// doJSON issues a request with a JSON body through the in-process app.
func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, target, err)
	}
	return resp
}

// decodeMap decodes a JSON object response body.
func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return out
}

// decodeList decodes a JSON array response body.
func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return out
}
