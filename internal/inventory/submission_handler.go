package inventory

import (
	"fmt"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/audit"
	"foodwise-backend/internal/database"
	"foodwise-backend/internal/models"
	"foodwise-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// POST /api/submissions
// Restricted create for the restaurant channel: the platform is mandatory,
// the quantity strictly positive, and the batch always starts Available with
// the full amount remaining.
func CreateSubmissionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := bodyMap(c)

		platformID, provided, err := validate.ID("platform_id", body["platform_id"])
		if err != nil {
			return err
		}
		if !provided {
			return apperr.BadRequest(apperr.KindRequiredFieldMissing, "Food platform ID is required.")
		}
		var platform models.FoodPlatform
		if err := database.DB.First(&platform, "id = ?", platformID).Error; err != nil {
			return apperr.ReferenceNotFound("Food platform")
		}

		itemType, err := validate.Required("Item type", body["item_type"])
		if err != nil {
			return err
		}
		quantity, err := validate.Positive("Quantity", body["quantity"])
		if err != nil {
			return err
		}
		category, err := validate.Category("Category", body["category"], models.CategoryHuman)
		if err != nil {
			return err
		}
		datePrepared, err := validate.OptionalDate("date_prepared", body["date_prepared"])
		if err != nil {
			return err
		}
		if datePrepared == nil {
			d := todayUTC()
			datePrepared = &d
		}

		item := models.Inventory{
			ItemType:          itemType,
			Quantity:          quantity,
			QuantityRemaining: quantity,
			DatePrepared:      datatypes.Date(*datePrepared),
			Status:            models.StatusAvailable,
			Category:          category,
			PlatformID:        &platform.ID,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return apperr.Internal("Could not create inventory item.")
		}
		item.Platform = &platform

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "inventory",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Platform submission: %s - %.2f from %s", item.ItemType, item.Quantity, platform.Name),
			After:       item,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status": "ok",
			"item":   newInventoryResponse(item),
		})
	}
}
