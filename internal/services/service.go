package services

import (
	"errors"

	"github.com/speccs/assetdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// silent returns a session that suppresses GORM query logging for hot paths.
func silent(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

// exists reports whether a row with the given id exists in the model's table.
func exists(db *gorm.DB, model interface{}, id string) (bool, error) {
	var count int64
	if err := silent(db).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// writeJournal appends an audit row for an asset inside the caller's
// transaction. Journal rows are only ever written here and only ever
// removed by asset cascade.
func writeJournal(tx *gorm.DB, assetID, action string, details map[string]interface{}) error {
	entry := models.Journal{
		AssetID:        assetID,
		UserIdentifier: "System",
		Action:         action,
		Details:        models.JSONObject(details),
	}
	return tx.Create(&entry).Error
}
