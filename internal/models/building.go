package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Building belongs to one Property
type Building struct {
	ID           string  `gorm:"type:char(36);primaryKey"`
	PropertyID   string  `gorm:"type:char(36);not null;index"`
	Name         string  `gorm:"size:255;not null"`
	BuildingType *string `gorm:"size:100"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Floors       []Floor `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

func (b *Building) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Building
func (Building) TableName() string {
	return "buildings"
}

// ToMap serializes the building to a JSON-safe key/value representation
func (b *Building) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":            b.ID,
		"property_id":   b.PropertyID,
		"name":          b.Name,
		"building_type": strOrNil(b.BuildingType),
		"created_at":    isoTime(&b.CreatedAt),
		"updated_at":    isoTime(&b.UpdatedAt),
	}
}
