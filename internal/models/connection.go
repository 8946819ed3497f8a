package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Connection is a directed, typed edge between two Assets. from != to is
// expected but not enforced, matching the source data.
type Connection struct {
	ID             string  `gorm:"type:char(36);primaryKey"`
	FromAssetID    string  `gorm:"type:char(36);not null;index"`
	ToAssetID      string  `gorm:"type:char(36);not null;index"`
	ConnectionType string  `gorm:"size:100;not null"`
	Description    *string `gorm:"size:1000"`
	CreatedAt      time.Time
}

func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Connection
func (Connection) TableName() string {
	return "connections"
}

// ToMap serializes the connection to a JSON-safe key/value representation
func (c *Connection) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":              c.ID,
		"from_asset_id":   c.FromAssetID,
		"to_asset_id":     c.ToAssetID,
		"connection_type": c.ConnectionType,
		"description":     strOrNil(c.Description),
		"created_at":      isoTime(&c.CreatedAt),
	}
}
