package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/speccs/assetdb/internal/services"
	"github.com/speccs/assetdb/internal/utils"
	"gorm.io/gorm"
)

// JournalHandler handles journal routes. The journal is append-only and
// written by the asset and connection services; the API surface is
// read-only.
type JournalHandler struct {
	DB *gorm.DB
}

// ListJournal handles GET /api/journal?asset_id=...&limit=...&before=...
// @Summary List journal entries
// @Description List audit entries newest first; before is an exclusive entry id cursor
// @Tags Journal
// @Produce json
// @Param asset_id query string false "Scope to one asset"
// @Param limit query int false "Page size, default 100"
// @Param before query int false "Exclusive entry id cursor"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /journal [get]
func (h *JournalHandler) ListJournal(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	before := uint64(c.QueryInt("before"))

	entries, err := services.ListJournal(h.DB, c.Query("asset_id"), limit, before)
	if err != nil {
		return serviceError(c, err, "Journal entry not found", "Failed to fetch journal entries", "listJournal")
	}

	result := make([]map[string]interface{}, 0, len(entries))
	for i := range entries {
		result = append(result, entries[i].ToMap())
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}
