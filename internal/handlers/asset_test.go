package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

// seedRoomID builds a property/building/floor/room chain over HTTP and
// returns the room id.
func seedRoomID(t *testing.T, app *fiber.App) string {
	t.Helper()

	property := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/properties", `{"name": "Main Tower"}`))
	building := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/buildings",
		`{"property_id": "`+property["id"].(string)+`", "name": "Block A"}`))
	floor := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/floors",
		`{"building_id": "`+building["id"].(string)+`", "name": "Ground", "level_order": 0}`))
	room := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/rooms",
		`{"floor_id": "`+floor["id"].(string)+`", "name": "Plant Room"}`))
	return room["id"].(string)
}

func TestCreateAssetEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)
	roomID := seedRoomID(t, app)

	// Decimal location fields accept both JSON numbers and numeric strings
	resp := doJSON(t, app, fiber.MethodPost, "/api/assets", `{
		"room_id": "`+roomID+`",
		"asset_type": "Boiler",
		"name": "Boiler One",
		"install_date": "2024-03-01",
		"location_angle": 90.5,
		"location_height": "1.20",
		"attributes": {"manufacturer": "Acme"}
	}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	body := decodeMap(t, resp)
	if body["status"] != "Active" {
		t.Errorf("Expected default status Active, got %v", body["status"])
	}
	if body["install_date"] != "2024-03-01" {
		t.Errorf("Expected date-only install_date, got %v", body["install_date"])
	}
	if body["location_angle"] != 90.5 {
		t.Errorf("Expected location_angle 90.5, got %v", body["location_angle"])
	}
	if body["location_height"] != 1.2 {
		t.Errorf("Expected location_height 1.2, got %v", body["location_height"])
	}
	attributes, ok := body["attributes"].(map[string]interface{})
	if !ok || attributes["manufacturer"] != "Acme" {
		t.Errorf("Expected attributes mapping echoed back, got %v", body["attributes"])
	}
}

func TestCreateAssetEndpointRejectsUnknownStatus(t *testing.T) {
	app, _ := setupTestApp(t)
	roomID := seedRoomID(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/assets",
		`{"room_id": "`+roomID+`", "asset_type": "Boiler", "status": "Broken"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestGetAssetEndpointIncludeConnections(t *testing.T) {
	app, _ := setupTestApp(t)
	roomID := seedRoomID(t, app)

	boiler := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/assets",
		`{"room_id": "`+roomID+`", "asset_type": "Boiler"}`))
	pump := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/assets",
		`{"room_id": "`+roomID+`", "asset_type": "Pump"}`))

	// Single-object body is accepted alongside the array form
	resp := doJSON(t, app, fiber.MethodPost, "/api/connections",
		`{"from_asset_id": "`+boiler["id"].(string)+`", "to_asset_id": "`+pump["id"].(string)+`", "connection_type": "feeds"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	plain := decodeMap(t, doJSON(t, app, fiber.MethodGet, "/api/assets/"+boiler["id"].(string), ""))
	if _, present := plain["outgoing_connections"]; present {
		t.Error("Expected no embedded connections without the flag")
	}

	embedded := decodeMap(t, doJSON(t, app, fiber.MethodGet,
		"/api/assets/"+boiler["id"].(string)+"?include_connections=true", ""))
	outgoing, ok := embedded["outgoing_connections"].([]interface{})
	if !ok {
		t.Fatalf("Expected embedded outgoing connections, got %T", embedded["outgoing_connections"])
	}
	if len(outgoing) != 1 {
		t.Errorf("Expected one outgoing connection, got %d", len(outgoing))
	}
	incoming, ok := embedded["incoming_connections"].([]interface{})
	if !ok || len(incoming) != 0 {
		t.Errorf("Expected empty incoming connections list, got %v", embedded["incoming_connections"])
	}
}

func TestListAssetsEndpointFilters(t *testing.T) {
	app, _ := setupTestApp(t)
	roomID := seedRoomID(t, app)

	doJSON(t, app, fiber.MethodPost, "/api/assets",
		`{"room_id": "`+roomID+`", "asset_type": "Boiler"}`)
	asset := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/assets",
		`{"room_id": "`+roomID+`", "asset_type": "Pump"}`))
	doJSON(t, app, fiber.MethodPut, "/api/assets/"+asset["id"].(string), `{"status": "Replaced"}`)

	all := decodeList(t, doJSON(t, app, fiber.MethodGet, "/api/assets?room_id="+roomID, ""))
	if len(all) != 2 {
		t.Fatalf("Expected two assets in the room, got %d", len(all))
	}

	replaced := decodeList(t, doJSON(t, app, fiber.MethodGet, "/api/assets?status=Replaced", ""))
	if len(replaced) != 1 {
		t.Fatalf("Expected one replaced asset, got %d", len(replaced))
	}
	if replaced[0]["asset_type"] != "Pump" {
		t.Errorf("Expected the pump to be the replaced asset, got %v", replaced[0]["asset_type"])
	}
}

func TestJournalEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)
	roomID := seedRoomID(t, app)

	asset := decodeMap(t, doJSON(t, app, fiber.MethodPost, "/api/assets",
		`{"room_id": "`+roomID+`", "asset_type": "Boiler"}`))
	doJSON(t, app, fiber.MethodPut, "/api/assets/"+asset["id"].(string),
		`{"name": "Boiler One", "user_identifier": "jdoe"}`)

	entries := decodeList(t, doJSON(t, app, fiber.MethodGet,
		"/api/journal?asset_id="+asset["id"].(string), ""))
	if len(entries) != 2 {
		t.Fatalf("Expected two journal entries, got %d", len(entries))
	}
	// Newest first
	if entries[0]["action"] != "Update" || entries[1]["action"] != "Create" {
		t.Errorf("Expected Update then Create, got %v then %v", entries[0]["action"], entries[1]["action"])
	}
	if entries[0]["user_identifier"] != "jdoe" {
		t.Errorf("Expected user identifier carried into the entry, got %v", entries[0]["user_identifier"])
	}
	if entries[1]["user_identifier"] != "System" {
		t.Errorf("Expected System default, got %v", entries[1]["user_identifier"])
	}
}
