package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/models"
)

func TestCreatePropertyEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/properties", `{"name": "Main Tower"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	body := decodeMap(t, resp)
	id, _ := body["id"].(string)
	if len(id) != 36 {
		t.Errorf("Expected UUID id, got %q", id)
	}
	if body["name"] != "Main Tower" {
		t.Errorf("Expected name echoed back, got %v", body["name"])
	}
	if address, present := body["address"]; !present || address != nil {
		t.Errorf("Expected address present and null, got %v (present %v)", address, present)
	}
	if body["created_at"] == nil || body["updated_at"] == nil {
		t.Error("Expected created_at and updated_at timestamps")
	}
}

func TestCreatePropertyEndpointRequiresName(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/properties", `{}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}

	body := decodeMap(t, resp)
	if body["error"] != "Property name is required" {
		t.Errorf("Expected validation message, got %v", body["error"])
	}
	if body["ok"] != false {
		t.Errorf("Expected ok false, got %v", body["ok"])
	}

	var n int64
	if err := db.Model(&models.Property{}).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count properties: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no property persisted, got %d", n)
	}
}

func TestListPropertiesEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/properties", `{"name": "North Site"}`)
	doJSON(t, app, fiber.MethodPost, "/api/properties", `{"name": "South Site", "address": "1 South Rd"}`)

	resp := doJSON(t, app, fiber.MethodGet, "/api/properties", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Api-Version") == "" {
		t.Error("Expected the version header on API responses")
	}

	list := decodeList(t, resp)
	if len(list) != 2 {
		t.Fatalf("Expected two properties, got %d", len(list))
	}
}

func TestGetPropertyEndpointEmbedsBuildings(t *testing.T) {
	app, _ := setupTestApp(t)

	created := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/properties", `{"name": "Campus"}`))
	propertyID := created["id"].(string)

	doJSON(t, app, fiber.MethodPost, "/api/buildings",
		`{"property_id": "`+propertyID+`", "name": "Block A"}`)

	resp := doJSON(t, app, fiber.MethodGet, "/api/properties/"+propertyID, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	buildings, ok := body["buildings"].([]interface{})
	if !ok {
		t.Fatalf("Expected embedded buildings list, got %T", body["buildings"])
	}
	if len(buildings) != 1 {
		t.Errorf("Expected one embedded building, got %d", len(buildings))
	}
}

func TestGetPropertyEndpointNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/properties/00000000-0000-0000-0000-000000000000", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if body["ok"] != false {
		t.Errorf("Expected ok false, got %v", body["ok"])
	}
}

func TestDeletePropertyEndpoint(t *testing.T) {
	app, db := setupTestApp(t)

	created := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/properties", `{"name": "Teardown"}`))
	propertyID := created["id"].(string)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/properties/"+propertyID, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	body := decodeMap(t, resp)
	if body["ok"] != true {
		t.Errorf("Expected ok true, got %v", body["ok"])
	}

	var n int64
	if err := db.Model(&models.Property{}).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count properties: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected property removed, got %d rows", n)
	}
}
