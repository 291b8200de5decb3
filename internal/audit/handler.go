package audit

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
)

// GET /api/audit-logs?limit=100
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit < 1 || limit > 500 {
			limit = 100
		}

		var logs []models.AuditLog
		if err := database.DB.
			Order("created_at desc, id desc").
			Limit(limit).
			Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Logs konden niet worden opgehaald")
		}

		return c.JSON(fiber.Map{"logs": logs})
	}
}
