package services

import (
	"github.com/speccs/assetdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

const defaultJournalLimit = 100

// ListJournal returns journal entries newest first, optionally scoped to
// one asset, paged by the before cursor (exclusive entry id).
func ListJournal(db *gorm.DB, assetID string, limit int, before uint64) ([]models.Journal, error) {
	if limit <= 0 || limit > 1000 {
		limit = defaultJournalLimit
	}

	query := silent(db)
	if assetID != "" {
		// The journal table grows without bound; keep the planner on the
		// asset index for the common per-asset listing.
		if db.Dialector.Name() == "mysql" {
			query = query.Clauses(hints.UseIndex("idx_journal_asset"))
		}
		query = query.Where("asset_id = ?", assetID)
	}
	if before > 0 {
		query = query.Where("entry_id < ?", before)
	}

	var entries []models.Journal
	if err := query.Order("entry_id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
