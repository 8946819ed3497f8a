// Full-stack tests against the containerized service and a real MariaDB.
// Run with docker available; skipped under -short.

package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/tests/helpers"
)

func startStack(t *testing.T) *helpers.TestContainers {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping container tests in short mode")
	}

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start containers: %v", err)
	}
	t.Cleanup(func() { tc.Terminate(t) })
	return tc
}

func request(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	var req *http.Request
	var err error
	if body != "" {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, url, err)
	}
	return resp
}

func createEntity(t *testing.T, base, path, body string) map[string]interface{} {
	t.Helper()

	resp := request(t, fiber.MethodPost, base+path, body)
	helpers.AssertStatus(t, resp, fiber.StatusCreated)
	var out map[string]interface{}
	helpers.ParseJSON(t, resp, &out)
	return out
}

func TestServiceEndToEnd(t *testing.T) {
	tc := startStack(t)
	base := tc.APIBase

	t.Run("greeting", func(t *testing.T) {
		resp := request(t, fiber.MethodGet, base+"/", "")
		helpers.AssertStatus(t, resp, fiber.StatusOK)
	})

	t.Run("db check", func(t *testing.T) {
		resp := request(t, fiber.MethodGet, base+"/db_check", "")
		helpers.AssertStatus(t, resp, fiber.StatusOK)
	})

	t.Run("health", func(t *testing.T) {
		resp := request(t, fiber.MethodGet, base+"/api/health", "")
		helpers.AssertStatus(t, resp, fiber.StatusOK)
		var health map[string]interface{}
		helpers.ParseJSON(t, resp, &health)
		if health["status"] != "healthy" {
			t.Errorf("Expected healthy status, got %v", health["status"])
		}
	})

	property := createEntity(t, base, "/api/properties", `{"name": "Main Tower", "address": "1 Tower Rd"}`)
	building := createEntity(t, base, "/api/buildings",
		fmt.Sprintf(`{"property_id": %q, "name": "Block A"}`, property["id"]))
	floor := createEntity(t, base, "/api/floors",
		fmt.Sprintf(`{"building_id": %q, "name": "Ground", "level_order": 0}`, building["id"]))
	room := createEntity(t, base, "/api/rooms",
		fmt.Sprintf(`{"floor_id": %q, "name": "Plant Room"}`, floor["id"]))

	door := createEntity(t, base, "/api/assets",
		fmt.Sprintf(`{"room_id": %q, "asset_type": "Door"}`, room["id"]))
	boiler := createEntity(t, base, "/api/assets",
		fmt.Sprintf(`{"room_id": %q, "asset_type": "Boiler", "location_height": "1.20"}`, room["id"]))

	t.Run("room reference door", func(t *testing.T) {
		resp := request(t, fiber.MethodPut, base+"/api/rooms/"+room["id"].(string),
			fmt.Sprintf(`{"reference_door_asset_id": %q}`, door["id"]))
		helpers.AssertStatus(t, resp, fiber.StatusOK)
		var updated map[string]interface{}
		helpers.ParseJSON(t, resp, &updated)
		if updated["reference_door_asset_id"] != door["id"] {
			t.Errorf("Expected reference door set, got %v", updated["reference_door_asset_id"])
		}
	})

	t.Run("connections and journal", func(t *testing.T) {
		resp := request(t, fiber.MethodPost, base+"/api/connections",
			fmt.Sprintf(`{"from_asset_id": %q, "to_asset_id": %q, "connection_type": "guards"}`,
				door["id"], boiler["id"]))
		helpers.AssertStatus(t, resp, fiber.StatusCreated)

		resp = request(t, fiber.MethodGet, base+"/api/journal?asset_id="+boiler["id"].(string), "")
		helpers.AssertStatus(t, resp, fiber.StatusOK)
		var entries []map[string]interface{}
		helpers.ParseJSON(t, resp, &entries)
		if len(entries) != 2 {
			t.Fatalf("Expected Create and Link entries, got %d", len(entries))
		}
		if entries[0]["action"] != "Link" {
			t.Errorf("Expected newest entry Link, got %v", entries[0]["action"])
		}
	})

	t.Run("validation error", func(t *testing.T) {
		resp := request(t, fiber.MethodPost, base+"/api/properties", `{}`)
		helpers.AssertStatus(t, resp, fiber.StatusBadRequest)
		var body map[string]interface{}
		helpers.ParseJSON(t, resp, &body)
		if body["error"] != "Property name is required" {
			t.Errorf("Expected validation message, got %v", body["error"])
		}
	})

	t.Run("cascade delete", func(t *testing.T) {
		resp := request(t, fiber.MethodDelete, base+"/api/properties/"+property["id"].(string), "")
		helpers.AssertStatus(t, resp, fiber.StatusOK)

		resp = request(t, fiber.MethodGet, base+"/api/assets", "")
		helpers.AssertStatus(t, resp, fiber.StatusOK)
		var assets []map[string]interface{}
		helpers.ParseJSON(t, resp, &assets)
		if len(assets) != 0 {
			t.Errorf("Expected all assets removed by cascade, got %d", len(assets))
		}

		resp = request(t, fiber.MethodGet, base+"/api/journal", "")
		helpers.AssertStatus(t, resp, fiber.StatusOK)
		var entries []map[string]interface{}
		helpers.ParseJSON(t, resp, &entries)
		if len(entries) != 0 {
			t.Errorf("Expected journal emptied by cascade, got %d entries", len(entries))
		}
	})
}
