package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room belongs to one Floor and may designate one Asset as its reference
// door. The door reference and Asset.RoomID form a cycle, so both sides
// are nullable and resolvable in either creation order.
type Room struct {
	ID                   string  `gorm:"type:char(36);primaryKey"`
	FloorID              string  `gorm:"type:char(36);not null;index"`
	Name                 string  `gorm:"size:255;not null"`
	Description          *string `gorm:"size:1000"`
	ReferenceDoorAssetID *string `gorm:"type:char(36)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Assets               []Asset `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	ReferenceDoor        *Asset  `gorm:"foreignKey:ReferenceDoorAssetID;references:ID;constraint:OnDelete:SET NULL"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Room
func (Room) TableName() string {
	return "rooms"
}

// ToMap serializes the room to a JSON-safe key/value representation
func (r *Room) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":                      r.ID,
		"floor_id":                r.FloorID,
		"name":                    r.Name,
		"description":             strOrNil(r.Description),
		"reference_door_asset_id": strOrNil(r.ReferenceDoorAssetID),
		"created_at":              isoTime(&r.CreatedAt),
		"updated_at":              isoTime(&r.UpdatedAt),
	}
}
