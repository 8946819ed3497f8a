package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property is the root aggregate of the physical hierarchy
type Property struct {
	ID        string  `gorm:"type:char(36);primaryKey"`
	Name      string  `gorm:"size:255;not null"`
	Address   *string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Buildings []Building `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID identity independent of storage auto-increment
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}

// ToMap serializes the property to a JSON-safe key/value representation
func (p *Property) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         p.ID,
		"name":       p.Name,
		"address":    strOrNil(p.Address),
		"created_at": isoTime(&p.CreatedAt),
		"updated_at": isoTime(&p.UpdatedAt),
	}
}
