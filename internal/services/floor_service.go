package services

import (
	"strings"

	"github.com/speccs/assetdb/internal/models"
	"github.com/speccs/assetdb/internal/types"
	"gorm.io/gorm"
)

// FloorInput is the payload for creating a floor
type FloorInput struct {
	BuildingID string `json:"building_id"`
	Name       string `json:"name"`
	LevelOrder int    `json:"level_order"`
}

// FloorUpdateInput is the payload for partially updating a floor
type FloorUpdateInput struct {
	Name       *string `json:"name"`
	LevelOrder *int    `json:"level_order"`
}

// CreateFloor validates and persists a new floor under a building
func CreateFloor(db *gorm.DB, input FloorInput) (*models.Floor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, types.NewValidationError("Floor name is required")
	}
	if input.BuildingID == "" {
		return nil, types.NewValidationError("Floor building_id is required")
	}

	ok, err := exists(db, &models.Building{}, input.BuildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.NewValidationError("Floor building_id does not reference an existing building")
	}

	floor := &models.Floor{
		BuildingID: input.BuildingID,
		Name:       input.Name,
		LevelOrder: input.LevelOrder,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(floor).Error
	})
	if err != nil {
		return nil, err
	}

	return floor, nil
}

// ListFloors returns floors ordered among siblings, optionally scoped to
// one building
func ListFloors(db *gorm.DB, buildingID string) ([]models.Floor, error) {
	var floors []models.Floor
	query := silent(db).Order("level_order")
	if buildingID != "" {
		query = query.Where("building_id = ?", buildingID)
	}
	if err := query.Find(&floors).Error; err != nil {
		return nil, err
	}
	return floors, nil
}

// GetFloor returns one floor with its rooms embedded
func GetFloor(db *gorm.DB, id string) (*models.Floor, error) {
	var floor models.Floor
	err := silent(db).Preload("Rooms").Where("id = ?", id).First(&floor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &floor, nil
}

// UpdateFloor applies a partial update
func UpdateFloor(db *gorm.DB, id string, input FloorUpdateInput) (*models.Floor, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, types.NewValidationError("Floor name is required")
	}

	var floor models.Floor
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := silent(tx).Where("id = ?", id).First(&floor).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.LevelOrder != nil {
			updates["level_order"] = *input.LevelOrder
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&floor).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &floor, nil
}
