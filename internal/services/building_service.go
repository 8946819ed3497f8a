package services

import (
	"strings"

	"github.com/speccs/assetdb/internal/models"
	"github.com/speccs/assetdb/internal/types"
	"gorm.io/gorm"
)

// BuildingInput is the payload for creating a building
type BuildingInput struct {
	PropertyID   string  `json:"property_id"`
	Name         string  `json:"name"`
	BuildingType *string `json:"building_type"`
}

// BuildingUpdateInput is the payload for partially updating a building
type BuildingUpdateInput struct {
	Name         *string `json:"name"`
	BuildingType *string `json:"building_type"`
}

// CreateBuilding validates and persists a new building under a property
func CreateBuilding(db *gorm.DB, input BuildingInput) (*models.Building, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, types.NewValidationError("Building name is required")
	}
	if input.PropertyID == "" {
		return nil, types.NewValidationError("Building property_id is required")
	}

	ok, err := exists(db, &models.Property{}, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.NewValidationError("Building property_id does not reference an existing property")
	}

	building := &models.Building{
		PropertyID:   input.PropertyID,
		Name:         input.Name,
		BuildingType: input.BuildingType,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(building).Error
	})
	if err != nil {
		return nil, err
	}

	return building, nil
}

// ListBuildings returns buildings, optionally scoped to one property
func ListBuildings(db *gorm.DB, propertyID string) ([]models.Building, error) {
	var buildings []models.Building
	query := silent(db)
	if propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}
	if err := query.Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

// GetBuilding returns one building with its floors embedded
func GetBuilding(db *gorm.DB, id string) (*models.Building, error) {
	var building models.Building
	err := silent(db).Preload("Floors").Where("id = ?", id).First(&building).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &building, nil
}

// UpdateBuilding applies a partial update
func UpdateBuilding(db *gorm.DB, id string, input BuildingUpdateInput) (*models.Building, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, types.NewValidationError("Building name is required")
	}

	var building models.Building
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := silent(tx).Where("id = ?", id).First(&building).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.BuildingType != nil {
			updates["building_type"] = *input.BuildingType
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&building).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &building, nil
}
