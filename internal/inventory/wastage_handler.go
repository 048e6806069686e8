package inventory

import (
	"fmt"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/audit"
	"foodwise-backend/internal/database"
	"foodwise-backend/internal/models"
	"foodwise-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type WastageResponse struct {
	ID          uint    `json:"id"`
	InventoryID uint    `json:"inventory_id"`
	ItemType    string  `json:"item_type"`
	Quantity    float64 `json:"quantity"`
	Reason      string  `json:"reason"`
	LoggedAt    string  `json:"logged_at"`
}

func newWastageResponse(entry models.Wastage) WastageResponse {
	return WastageResponse{
		ID:          entry.ID,
		InventoryID: entry.InventoryID,
		ItemType:    entry.Inventory.ItemType,
		Quantity:    entry.Quantity,
		Reason:      entry.Reason,
		LoggedAt:    entry.LoggedAt.Format("2006-01-02 15:04:05"),
	}
}

func parseLimit(c *fiber.Ctx, def int) int {
	limit := def
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscan(limitStr, &limit); err != nil || limit <= 0 {
			limit = def
		}
	}
	return limit
}

// GET /api/wastage?limit=20
func ListWastageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := parseLimit(c, 20)

		var entries []models.Wastage
		if err := database.DB.Preload("Inventory").
			Order("logged_at DESC, id DESC").Limit(limit).
			Find(&entries).Error; err != nil {
			return apperr.Internal("Could not list wastage entries.")
		}

		resp := make([]WastageResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, newWastageResponse(e))
		}
		return c.JSON(resp)
	}
}

// POST /api/wastage
func CreateWastageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := bodyMap(c)

		inventoryID, provided, err := validate.ID("inventory_id", body["inventory_id"])
		if err != nil {
			return err
		}
		if !provided {
			return apperr.BadRequest(apperr.KindRequiredFieldMissing, "Inventory ID is required.")
		}
		quantity, err := validate.Positive("Quantity", body["quantity"])
		if err != nil {
			return err
		}
		reason := validate.Clean(body["reason"], "Not specified")

		entry, item, err := RecordWastage(database.DB, inventoryID, quantity, reason)
		if err != nil {
			if _, ok := err.(*apperr.Error); ok {
				return err
			}
			return apperr.Internal("Could not record wastage.")
		}
		entry.Inventory = item

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "wastage",
			EntityID:    entry.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Wastage logged: %s - %.2f (%s)", item.ItemType, entry.Quantity, entry.Reason),
			After:       entry,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status": "ok",
			"entry":  newWastageResponse(entry),
		})
	}
}
