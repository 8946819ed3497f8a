package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset status values
const (
	AssetStatusActive   = "Active"
	AssetStatusReplaced = "Replaced"
	AssetStatusDeleted  = "Deleted"
)

// ValidAssetStatus reports whether s is one of the known status values.
func ValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusActive, AssetStatusReplaced, AssetStatusDeleted:
		return true
	}
	return false
}

// Asset is a physical item or fixture, optionally located in a Room.
// Location angle/height/depth are degrees or percentages, wall spans carry
// their own unit strings, and Attributes is an open JSON mapping.
type Asset struct {
	ID             string  `gorm:"type:char(36);primaryKey"`
	RoomID         *string `gorm:"type:char(36);index"`
	AssetType      string  `gorm:"size:100;not null"`
	Name           *string `gorm:"size:255"`
	Description    *string `gorm:"size:1000"`
	InstallDate    *time.Time `gorm:"type:date"`
	Status         string  `gorm:"size:20;not null;default:'Active'"`
	LocationAngle  *float64 `gorm:"type:decimal(5,2)"`
	LocationHeight *float64 `gorm:"type:decimal(5,2)"`
	LocationDepth  *float64 `gorm:"type:decimal(5,2)"`
	WallLength     *float64 `gorm:"type:decimal(10,2)"`
	WallLengthUnit *string  `gorm:"size:20"`
	WallHeight     *float64 `gorm:"type:decimal(10,2)"`
	WallHeightUnit *string  `gorm:"size:20"`
	Attributes     JSON     `gorm:"type:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	OutgoingConnections []Connection `gorm:"foreignKey:FromAssetID;constraint:OnDelete:CASCADE"`
	IncomingConnections []Connection `gorm:"foreignKey:ToAssetID;constraint:OnDelete:CASCADE"`
	JournalEntries      []Journal    `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns identity and defaults the attribute mapping to an
// empty object so serialization never yields null for it.
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = AssetStatusActive
	}
	if len(a.Attributes.JSON) == 0 {
		a.Attributes = EmptyJSONObject()
	}
	return nil
}

// TableName overrides the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// ToMap serializes the asset to a JSON-safe key/value representation.
// Connections are embedded only when includeConnections is set, to avoid
// unbounded payload growth on list responses.
func (a *Asset) ToMap(includeConnections bool) map[string]interface{} {
	out := map[string]interface{}{
		"id":               a.ID,
		"room_id":          strOrNil(a.RoomID),
		"asset_type":       a.AssetType,
		"name":             strOrNil(a.Name),
		"description":      strOrNil(a.Description),
		"install_date":     isoDate(a.InstallDate),
		"status":           a.Status,
		"location_angle":   floatOrNil(a.LocationAngle),
		"location_height":  floatOrNil(a.LocationHeight),
		"location_depth":   floatOrNil(a.LocationDepth),
		"wall_length":      floatOrNil(a.WallLength),
		"wall_length_unit": strOrNil(a.WallLengthUnit),
		"wall_height":      floatOrNil(a.WallHeight),
		"wall_height_unit": strOrNil(a.WallHeightUnit),
		"attributes":       a.Attributes.Map(),
		"created_at":       isoTime(&a.CreatedAt),
		"updated_at":       isoTime(&a.UpdatedAt),
	}

	if includeConnections {
		outgoing := make([]map[string]interface{}, 0, len(a.OutgoingConnections))
		for i := range a.OutgoingConnections {
			outgoing = append(outgoing, a.OutgoingConnections[i].ToMap())
		}
		incoming := make([]map[string]interface{}, 0, len(a.IncomingConnections))
		for i := range a.IncomingConnections {
			incoming = append(incoming, a.IncomingConnections[i].ToMap())
		}
		out["outgoing_connections"] = outgoing
		out["incoming_connections"] = incoming
	}

	return out
}
