package helpers

import (
	"testing"

	"github.com/speccs/assetdb/internal/models"
	"gorm.io/gorm"
)

// CreateTestHierarchy seeds a property → building → floor → room chain and
// returns the created rows.
func CreateTestHierarchy(t *testing.T, db *gorm.DB, name string) (*models.Property, *models.Building, *models.Floor, *models.Room) {
	t.Helper()

	property := &models.Property{Name: name}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}

	building := &models.Building{PropertyID: property.ID, Name: name + " Building"}
	if err := db.Create(building).Error; err != nil {
		t.Fatalf("Failed to create building: %v", err)
	}

	floor := &models.Floor{BuildingID: building.ID, Name: "Ground", LevelOrder: 0}
	if err := db.Create(floor).Error; err != nil {
		t.Fatalf("Failed to create floor: %v", err)
	}

	room := &models.Room{FloorID: floor.ID, Name: name + " Room"}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	return property, building, floor, room
}

// CreateTestAsset seeds one asset inside the given room.
func CreateTestAsset(t *testing.T, db *gorm.DB, roomID, assetType string) *models.Asset {
	t.Helper()

	asset := &models.Asset{RoomID: &roomID, AssetType: assetType}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}
	return asset
}
