package services

import (
	"strings"

	"github.com/speccs/assetdb/internal/models"
	"github.com/speccs/assetdb/internal/types"
	"gorm.io/gorm"
)

// RoomInput is the payload for creating a room. The reference door may
// name an asset that does not yet sit in this room; the reverse link is
// patched when the asset is created or updated.
type RoomInput struct {
	FloorID              string  `json:"floor_id"`
	Name                 string  `json:"name"`
	Description          *string `json:"description"`
	ReferenceDoorAssetID *string `json:"reference_door_asset_id"`
}

// RoomUpdateInput is the payload for partially updating a room
type RoomUpdateInput struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	ReferenceDoorAssetID *string `json:"reference_door_asset_id"`
	ClearReferenceDoor   bool    `json:"clear_reference_door"`
}

// CreateRoom validates and persists a new room under a floor
func CreateRoom(db *gorm.DB, input RoomInput) (*models.Room, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, types.NewValidationError("Room name is required")
	}
	if input.FloorID == "" {
		return nil, types.NewValidationError("Room floor_id is required")
	}

	ok, err := exists(db, &models.Floor{}, input.FloorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.NewValidationError("Room floor_id does not reference an existing floor")
	}

	if input.ReferenceDoorAssetID != nil && *input.ReferenceDoorAssetID != "" {
		ok, err := exists(db, &models.Asset{}, *input.ReferenceDoorAssetID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, types.NewValidationError("Room reference_door_asset_id does not reference an existing asset")
		}
	}

	room := &models.Room{
		FloorID:              input.FloorID,
		Name:                 input.Name,
		Description:          input.Description,
		ReferenceDoorAssetID: input.ReferenceDoorAssetID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(room).Error
	})
	if err != nil {
		return nil, err
	}

	return room, nil
}

// ListRooms returns rooms, optionally scoped to one floor
func ListRooms(db *gorm.DB, floorID string) ([]models.Room, error) {
	var rooms []models.Room
	query := silent(db)
	if floorID != "" {
		query = query.Where("floor_id = ?", floorID)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom returns one room with its assets embedded
func GetRoom(db *gorm.DB, id string) (*models.Room, error) {
	var room models.Room
	err := silent(db).Preload("Assets").Where("id = ?", id).First(&room).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// UpdateRoom applies a partial update. Setting the reference door after
// creation is the second write that resolves the Room↔Asset cycle.
func UpdateRoom(db *gorm.DB, id string, input RoomUpdateInput) (*models.Room, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, types.NewValidationError("Room name is required")
	}

	if input.ReferenceDoorAssetID != nil && *input.ReferenceDoorAssetID != "" {
		ok, err := exists(db, &models.Asset{}, *input.ReferenceDoorAssetID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, types.NewValidationError("Room reference_door_asset_id does not reference an existing asset")
		}
	}

	var room models.Room
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := silent(tx).Where("id = ?", id).First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.ClearReferenceDoor {
			updates["reference_door_asset_id"] = nil
		} else if input.ReferenceDoorAssetID != nil {
			updates["reference_door_asset_id"] = *input.ReferenceDoorAssetID
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&room).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &room, nil
}
