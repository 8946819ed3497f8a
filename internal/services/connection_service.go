package services

import (
	"strings"

	"github.com/speccs/assetdb/internal/models"
	"github.com/speccs/assetdb/internal/types"
	"gorm.io/gorm"
)

// ConnectionInput is the payload for creating a directed connection
type ConnectionInput struct {
	FromAssetID    string  `json:"from_asset_id"`
	ToAssetID      string  `json:"to_asset_id"`
	ConnectionType string  `json:"connection_type"`
	Description    *string `json:"description"`
}

// CreateConnections persists one or more connections and journals a Link
// action against both endpoint assets of each, all in one transaction.
func CreateConnections(db *gorm.DB, inputs []ConnectionInput) ([]models.Connection, error) {
	if len(inputs) == 0 {
		return nil, types.NewValidationError("Connection payload is required")
	}

	for _, input := range inputs {
		if input.FromAssetID == "" || input.ToAssetID == "" {
			return nil, types.NewValidationError("Connection from_asset_id and to_asset_id are required")
		}
		if strings.TrimSpace(input.ConnectionType) == "" {
			return nil, types.NewValidationError("Connection connection_type is required")
		}
		for _, assetID := range []string{input.FromAssetID, input.ToAssetID} {
			ok, err := exists(db, &models.Asset{}, assetID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, types.NewValidationError("Connection references a non-existing asset")
			}
		}
	}

	connections := make([]models.Connection, 0, len(inputs))
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			connection := models.Connection{
				FromAssetID:    input.FromAssetID,
				ToAssetID:      input.ToAssetID,
				ConnectionType: input.ConnectionType,
				Description:    input.Description,
			}
			if err := tx.Create(&connection).Error; err != nil {
				return err
			}

			details := map[string]interface{}{
				"connection_id":   connection.ID,
				"connection_type": connection.ConnectionType,
			}
			if err := writeJournal(tx, connection.FromAssetID, models.JournalActionLink,
				mergeDetail(details, "peer_asset_id", connection.ToAssetID)); err != nil {
				return err
			}
			if err := writeJournal(tx, connection.ToAssetID, models.JournalActionLink,
				mergeDetail(details, "peer_asset_id", connection.FromAssetID)); err != nil {
				return err
			}

			connections = append(connections, connection)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return connections, nil
}

// ListConnections returns connections, optionally those touching one asset
// on either end.
func ListConnections(db *gorm.DB, assetID string) ([]models.Connection, error) {
	var connections []models.Connection
	query := silent(db)
	if assetID != "" {
		query = query.Where("from_asset_id = ? OR to_asset_id = ?", assetID, assetID)
	}
	if err := query.Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}

// GetConnection returns one connection
func GetConnection(db *gorm.DB, id string) (*models.Connection, error) {
	var connection models.Connection
	err := silent(db).Where("id = ?", id).First(&connection).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &connection, nil
}

// DeleteConnection removes a connection and journals an Unlink action
// against both endpoint assets.
func DeleteConnection(db *gorm.DB, id string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var connection models.Connection
		if err := silent(tx).Where("id = ?", id).First(&connection).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Connection{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected

		details := map[string]interface{}{
			"connection_id":   connection.ID,
			"connection_type": connection.ConnectionType,
		}
		if err := writeJournal(tx, connection.FromAssetID, models.JournalActionUnlink,
			mergeDetail(details, "peer_asset_id", connection.ToAssetID)); err != nil {
			return err
		}
		return writeJournal(tx, connection.ToAssetID, models.JournalActionUnlink,
			mergeDetail(details, "peer_asset_id", connection.FromAssetID))
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func mergeDetail(base map[string]interface{}, key string, value interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+1)
	for k, v := range base {
		out[k] = v
	}
	out[key] = value
	return out
}
