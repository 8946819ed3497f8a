package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/speccs/assetdb/internal/models"
	"github.com/speccs/assetdb/internal/types"
	"gorm.io/gorm"
)

// AssetInput is the payload for creating an asset. Decimal fields accept
// numbers or strings on the wire; install_date is an ISO date.
type AssetInput struct {
	RoomID         *string                `json:"room_id"`
	AssetType      string                 `json:"asset_type"`
	Name           *string                `json:"name"`
	Description    *string                `json:"description"`
	InstallDate    *string                `json:"install_date"`
	Status         *string                `json:"status"`
	LocationAngle  types.FlexFloat64      `json:"location_angle"`
	LocationHeight types.FlexFloat64      `json:"location_height"`
	LocationDepth  types.FlexFloat64      `json:"location_depth"`
	WallLength     types.FlexFloat64      `json:"wall_length"`
	WallLengthUnit *string                `json:"wall_length_unit"`
	WallHeight     types.FlexFloat64      `json:"wall_height"`
	WallHeightUnit *string                `json:"wall_height_unit"`
	Attributes     map[string]interface{} `json:"attributes"`
}

// AssetUpdateInput is the payload for partially updating an asset
type AssetUpdateInput struct {
	RoomID         *string                `json:"room_id"`
	ClearRoom      bool                   `json:"clear_room"`
	AssetType      *string                `json:"asset_type"`
	Name           *string                `json:"name"`
	Description    *string                `json:"description"`
	InstallDate    *string                `json:"install_date"`
	Status         *string                `json:"status"`
	LocationAngle  types.FlexFloat64      `json:"location_angle"`
	LocationHeight types.FlexFloat64      `json:"location_height"`
	LocationDepth  types.FlexFloat64      `json:"location_depth"`
	WallLength     types.FlexFloat64      `json:"wall_length"`
	WallLengthUnit *string                `json:"wall_length_unit"`
	WallHeight     types.FlexFloat64      `json:"wall_height"`
	WallHeightUnit *string                `json:"wall_height_unit"`
	Attributes     map[string]interface{} `json:"attributes"`
	UserIdentifier *string                `json:"user_identifier"`
}

const dateLayout = "2006-01-02"

func parseInstallDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, types.NewValidationError(fmt.Sprintf("Asset install_date %q is not a valid YYYY-MM-DD date", *value))
	}
	return &t, nil
}

// CreateAsset validates and persists a new asset and journals the creation
// in the same transaction.
func CreateAsset(db *gorm.DB, input AssetInput) (*models.Asset, error) {
	if strings.TrimSpace(input.AssetType) == "" {
		return nil, types.NewValidationError("Asset asset_type is required")
	}
	if input.Status != nil && !models.ValidAssetStatus(*input.Status) {
		return nil, types.NewValidationError("Asset status must be one of Active, Replaced, Deleted")
	}
	if input.RoomID != nil && *input.RoomID != "" {
		ok, err := exists(db, &models.Room{}, *input.RoomID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, types.NewValidationError("Asset room_id does not reference an existing room")
		}
	}

	installDate, err := parseInstallDate(input.InstallDate)
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		RoomID:         input.RoomID,
		AssetType:      input.AssetType,
		Name:           input.Name,
		Description:    input.Description,
		InstallDate:    installDate,
		LocationAngle:  input.LocationAngle.Ptr(),
		LocationHeight: input.LocationHeight.Ptr(),
		LocationDepth:  input.LocationDepth.Ptr(),
		WallLength:     input.WallLength.Ptr(),
		WallLengthUnit: input.WallLengthUnit,
		WallHeight:     input.WallHeight.Ptr(),
		WallHeightUnit: input.WallHeightUnit,
		Attributes:     models.JSONObject(input.Attributes),
	}
	if input.Status != nil {
		asset.Status = *input.Status
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(asset).Error; err != nil {
			return err
		}
		details := map[string]interface{}{"asset_type": asset.AssetType}
		if asset.RoomID != nil {
			details["room_id"] = *asset.RoomID
		}
		return writeJournal(tx, asset.ID, models.JournalActionCreate, details)
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// ListAssets returns assets, optionally filtered by room and status
func ListAssets(db *gorm.DB, roomID, status string) ([]models.Asset, error) {
	var assets []models.Asset
	query := silent(db)
	if roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// GetAsset returns one asset, optionally with its outgoing and incoming
// connections preloaded for embedded serialization.
func GetAsset(db *gorm.DB, id string, includeConnections bool) (*models.Asset, error) {
	var asset models.Asset
	query := silent(db)
	if includeConnections {
		query = query.Preload("OutgoingConnections").Preload("IncomingConnections")
	}
	err := query.Where("id = ?", id).First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// UpdateAsset applies a partial update and journals it. A status move to
// Replaced journals a Replace action, a move to Deleted journals Delete,
// any other change journals Update.
func UpdateAsset(db *gorm.DB, id string, input AssetUpdateInput) (*models.Asset, error) {
	if input.AssetType != nil && strings.TrimSpace(*input.AssetType) == "" {
		return nil, types.NewValidationError("Asset asset_type is required")
	}
	if input.Status != nil && !models.ValidAssetStatus(*input.Status) {
		return nil, types.NewValidationError("Asset status must be one of Active, Replaced, Deleted")
	}
	if input.RoomID != nil && *input.RoomID != "" {
		ok, err := exists(db, &models.Room{}, *input.RoomID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, types.NewValidationError("Asset room_id does not reference an existing room")
		}
	}

	installDate, err := parseInstallDate(input.InstallDate)
	if err != nil {
		return nil, err
	}

	var asset models.Asset
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := silent(tx).Where("id = ?", id).First(&asset).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		previousStatus := asset.Status

		updates := map[string]interface{}{}
		if input.ClearRoom {
			updates["room_id"] = nil
		} else if input.RoomID != nil {
			updates["room_id"] = *input.RoomID
		}
		if input.AssetType != nil {
			updates["asset_type"] = *input.AssetType
		}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if installDate != nil {
			updates["install_date"] = *installDate
		}
		if input.Status != nil {
			updates["status"] = *input.Status
		}
		if input.LocationAngle.Set {
			updates["location_angle"] = input.LocationAngle.Ptr()
		}
		if input.LocationHeight.Set {
			updates["location_height"] = input.LocationHeight.Ptr()
		}
		if input.LocationDepth.Set {
			updates["location_depth"] = input.LocationDepth.Ptr()
		}
		if input.WallLength.Set {
			updates["wall_length"] = input.WallLength.Ptr()
		}
		if input.WallLengthUnit != nil {
			updates["wall_length_unit"] = *input.WallLengthUnit
		}
		if input.WallHeight.Set {
			updates["wall_height"] = input.WallHeight.Ptr()
		}
		if input.WallHeightUnit != nil {
			updates["wall_height_unit"] = *input.WallHeightUnit
		}
		if input.Attributes != nil {
			updates["attributes"] = models.JSONObject(input.Attributes)
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&asset).Updates(updates).Error; err != nil {
			return err
		}

		action := models.JournalActionUpdate
		if input.Status != nil && *input.Status != previousStatus {
			switch *input.Status {
			case models.AssetStatusReplaced:
				action = models.JournalActionReplace
			case models.AssetStatusDeleted:
				action = models.JournalActionDelete
			}
		}

		changed := make([]interface{}, 0, len(updates))
		for field := range updates {
			changed = append(changed, field)
		}
		details := map[string]interface{}{"changed": changed}

		entry := models.Journal{
			AssetID: asset.ID,
			Action:  action,
			Details: models.JSONObject(details),
		}
		if input.UserIdentifier != nil && *input.UserIdentifier != "" {
			entry.UserIdentifier = *input.UserIdentifier
		} else {
			entry.UserIdentifier = "System"
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

// DeleteAsset removes an asset together with its connections and journal
// rows, and nulls out any room reference-door link that points at it.
func DeleteAsset(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Asset{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		affected, err = deleteAssetsTx(tx, []string{id})
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
