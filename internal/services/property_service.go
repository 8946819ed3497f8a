package services

import (
	"strings"

	"github.com/speccs/assetdb/internal/models"
	"github.com/speccs/assetdb/internal/types"
	"gorm.io/gorm"
)

// PropertyInput is the payload for creating a property
type PropertyInput struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// PropertyUpdateInput is the payload for partially updating a property
type PropertyUpdateInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// CreateProperty validates and persists a new property. The write is
// wrapped in a transaction so a failure leaves no partial row.
func CreateProperty(db *gorm.DB, input PropertyInput) (*models.Property, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, types.NewValidationError("Property name is required")
	}

	property := &models.Property{
		Name:    input.Name,
		Address: input.Address,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(property).Error
	})
	if err != nil {
		return nil, err
	}

	return property, nil
}

// ListProperties returns every property in storage
func ListProperties(db *gorm.DB) ([]models.Property, error) {
	var properties []models.Property
	if err := silent(db).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty returns one property with its buildings embedded
func GetProperty(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	err := silent(db).Preload("Buildings").Where("id = ?", id).First(&property).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// UpdateProperty applies a partial update and refreshes the update timestamp
func UpdateProperty(db *gorm.DB, id string, input PropertyUpdateInput) (*models.Property, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, types.NewValidationError("Property name is required")
	}

	var property models.Property
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := silent(tx).Where("id = ?", id).First(&property).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&property).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &property, nil
}
