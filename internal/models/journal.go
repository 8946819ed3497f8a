package models

import "time"

// Journal action values
const (
	JournalActionCreate  = "Create"
	JournalActionUpdate  = "Update"
	JournalActionReplace = "Replace"
	JournalActionDelete  = "Delete"
	JournalActionLink    = "Link"
	JournalActionUnlink  = "Unlink"
)

// Journal is an append-only audit row against one Asset. Unlike the other
// entities it keys on a sequential integer, sized for high row volume.
// Rows are never updated or deleted except via Asset cascade.
type Journal struct {
	EntryID        uint64 `gorm:"primaryKey;autoIncrement"`
	AssetID        string `gorm:"type:char(36);not null;index:idx_journal_asset"`
	UserIdentifier string `gorm:"size:255;not null;default:'System'"`
	Action         string `gorm:"size:20;not null"`
	Details        JSON   `gorm:"type:json"`
	CreatedAt      time.Time
}

// TableName overrides the table name for Journal
func (Journal) TableName() string {
	return "journal"
}

// ToMap serializes the journal entry to a JSON-safe key/value representation
func (j *Journal) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"entry_id":        j.EntryID,
		"asset_id":        j.AssetID,
		"user_identifier": j.UserIdentifier,
		"action":          j.Action,
		"details":         j.Details.Map(),
		"created_at":      isoTime(&j.CreatedAt),
	}
}
