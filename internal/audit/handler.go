package audit

import (
	"fmt"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/database"
	"foodwise-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?limit=50&entity_type=inventory
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if limitStr := c.Query("limit"); limitStr != "" {
			if _, err := fmt.Sscan(limitStr, &limit); err != nil || limit <= 0 {
				limit = 50
			}
		}

		query := database.DB.Order("created_at DESC, id DESC").Limit(limit)
		if entityType := c.Query("entity_type"); entityType != "" {
			query = query.Where("entity_type = ?", entityType)
		}

		var entries []models.AuditLog
		if err := query.Find(&entries).Error; err != nil {
			return apperr.Internal("Could not list audit logs.")
		}

		return c.JSON(entries)
	}
}
