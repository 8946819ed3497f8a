package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Floor belongs to one Building, ordered among siblings by LevelOrder
type Floor struct {
	ID         string `gorm:"type:char(36);primaryKey"`
	BuildingID string `gorm:"type:char(36);not null;index"`
	Name       string `gorm:"size:255;not null"`
	LevelOrder int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Rooms      []Room `gorm:"foreignKey:FloorID;constraint:OnDelete:CASCADE"`
}

func (f *Floor) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Floor
func (Floor) TableName() string {
	return "floors"
}

// ToMap serializes the floor to a JSON-safe key/value representation
func (f *Floor) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":          f.ID,
		"building_id": f.BuildingID,
		"name":        f.Name,
		"level_order": f.LevelOrder,
		"created_at":  isoTime(&f.CreatedAt),
		"updated_at":  isoTime(&f.UpdatedAt),
	}
}
