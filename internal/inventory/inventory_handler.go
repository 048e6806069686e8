package inventory

import (
	"fmt"
	"time"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/audit"
	"foodwise-backend/internal/database"
	"foodwise-backend/internal/models"
	"foodwise-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type PlatformSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact,omitempty"`
}

type InventoryResponse struct {
	ID                uint             `json:"id"`
	ItemType          string           `json:"item_type"`
	Quantity          float64          `json:"quantity"`
	QuantityRemaining float64          `json:"quantity_remaining"`
	DatePrepared      string           `json:"date_prepared"`
	Status            string           `json:"status"`
	Category          string           `json:"category"`
	PlatformID        *uint            `json:"platform_id"`
	Platform          *PlatformSummary `json:"platform,omitempty"`
	CreatedAt         string           `json:"created_at"`
}

func newInventoryResponse(item models.Inventory) InventoryResponse {
	resp := InventoryResponse{
		ID:                item.ID,
		ItemType:          item.ItemType,
		Quantity:          item.Quantity,
		QuantityRemaining: item.QuantityRemaining,
		DatePrepared:      time.Time(item.DatePrepared).Format("2006-01-02"),
		Status:            item.Status,
		Category:          string(item.Category),
		PlatformID:        item.PlatformID,
		CreatedAt:         item.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if item.Platform != nil {
		resp.Platform = &PlatformSummary{
			ID:      item.Platform.ID,
			Name:    item.Platform.Name,
			Address: item.Platform.Address,
			Contact: item.Platform.Contact,
		}
	}
	return resp
}

// bodyMap reads the JSON body as an untyped record; an empty or malformed
// body becomes an empty map so the field validations below report the
// missing fields instead of a generic parse error.
func bodyMap(c *fiber.Ctx) map[string]any {
	data := map[string]any{}
	_ = c.BodyParser(&data)
	return data
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	var id uint
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GET /api/inventory?status=&search=&category=&platform_id=
func ListInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("Platform").Order("id DESC")

		if status := c.Query("status"); status != "" {
			query = query.Where("status ILIKE ?", "%"+status+"%")
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("item_type ILIKE ?", "%"+search+"%")
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category ILIKE ?", "%"+category+"%")
		}
		if platformID := c.Query("platform_id"); platformID != "" {
			var pid uint
			if _, err := fmt.Sscan(platformID, &pid); err == nil {
				query = query.Where("platform_id = ?", pid)
			}
		}

		var items []models.Inventory
		if err := query.Find(&items).Error; err != nil {
			return apperr.Internal("Could not list inventory.")
		}

		resp := make([]InventoryResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, newInventoryResponse(item))
		}
		return c.JSON(resp)
	}
}

// POST /api/inventory
func CreateInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := bodyMap(c)

		itemType, err := validate.Required("Item type", data["item_type"])
		if err != nil {
			return err
		}
		quantity, err := validate.NonNegative("Quantity", data["quantity"])
		if err != nil {
			return err
		}

		// A missing or negative remaining falls back to the produced amount.
		quantityRemaining := quantity
		if r, rErr := validate.OptionalFloat("quantity_remaining", data["quantity_remaining"]); rErr == nil && r != nil && *r >= 0 {
			quantityRemaining = *r
		}

		datePrepared, err := validate.OptionalDate("date_prepared", data["date_prepared"])
		if err != nil {
			return err
		}
		if datePrepared == nil {
			d := todayUTC()
			datePrepared = &d
		}

		status := validate.TitleCase(validate.Clean(data["status"], models.StatusAvailable))
		category, err := validate.Category("Category", data["category"], models.CategoryHuman)
		if err != nil {
			return err
		}

		var platformID *uint
		var platform *models.FoodPlatform
		if pid, ok, pErr := validate.ID("platform_id", data["platform_id"]); pErr != nil {
			return pErr
		} else if ok {
			var p models.FoodPlatform
			if err := database.DB.First(&p, "id = ?", pid).Error; err != nil {
				return apperr.ReferenceNotFound("Food platform")
			}
			platform = &p
			platformID = &p.ID
		}

		item := models.Inventory{
			ItemType:          itemType,
			Quantity:          quantity,
			QuantityRemaining: quantityRemaining,
			DatePrepared:      datatypes.Date(*datePrepared),
			Status:            status,
			Category:          category,
			PlatformID:        platformID,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return apperr.Internal("Could not create inventory item.")
		}
		item.Platform = platform

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "inventory",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Inventory created: %s - %.2f", item.ItemType, item.Quantity),
			After:       item,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status": "ok",
			"item":   newInventoryResponse(item),
		})
	}
}

// GET /api/inventory/:id
func GetInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c)
		if !ok {
			return apperr.NotFound("Inventory item")
		}

		var item models.Inventory
		if err := database.DB.Preload("Platform").First(&item, "id = ?", id).Error; err != nil {
			return apperr.NotFound("Inventory item")
		}
		return c.JSON(newInventoryResponse(item))
	}
}

// PUT /api/inventory/:id
// Merges only the fields present in the body onto the stored item.
func UpdateInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c)
		if !ok {
			return apperr.NotFound("Inventory item")
		}

		var item models.Inventory
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return apperr.NotFound("Inventory item")
		}
		before := item

		body := bodyMap(c)
		updates := map[string]any{}

		if raw, present := body["item_type"]; present {
			value, err := validate.Required("Item type", raw)
			if err != nil {
				return err
			}
			updates["item_type"] = value
		}
		if raw, present := body["quantity"]; present {
			value, err := validate.NonNegative("Quantity", raw)
			if err != nil {
				return err
			}
			updates["quantity"] = value
		}
		if raw, present := body["quantity_remaining"]; present {
			value, err := validate.NonNegative("Quantity remaining", raw)
			if err != nil {
				return err
			}
			updates["quantity_remaining"] = value
		}
		if raw, present := body["status"]; present {
			if value := validate.TitleCase(validate.Clean(raw, "")); value != "" {
				updates["status"] = value
			}
		}
		if raw, present := body["category"]; present {
			value, err := validate.Category("Category", raw, item.Category)
			if err != nil {
				return err
			}
			updates["category"] = string(value)
		}
		if raw, present := body["platform_id"]; present {
			pid, provided, err := validate.ID("platform_id", raw)
			if err != nil {
				return err
			}
			if provided {
				var platform models.FoodPlatform
				if err := database.DB.First(&platform, "id = ?", pid).Error; err != nil {
					return apperr.ReferenceNotFound("Food platform")
				}
				updates["platform_id"] = platform.ID
			} else {
				updates["platform_id"] = nil
			}
		}
		if raw, present := body["date_prepared"]; present {
			parsed, err := validate.OptionalDate("date_prepared", raw)
			if err != nil {
				return err
			}
			if parsed == nil {
				return apperr.BadRequest(apperr.KindInvalidDate, "Invalid date format.")
			}
			updates["date_prepared"] = datatypes.Date(*parsed)
		}

		if len(updates) > 0 {
			if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
				return apperr.Internal("Could not update inventory item.")
			}
		}

		if err := database.DB.Preload("Platform").First(&item, "id = ?", id).Error; err != nil {
			return apperr.Internal("Could not load inventory item.")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "inventory",
			EntityID:    item.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Inventory updated: %s", item.ItemType),
			Before:      before,
			After:       item,
		})

		return c.JSON(fiber.Map{
			"status": "ok",
			"item":   newInventoryResponse(item),
		})
	}
}

// DELETE /api/inventory/:id
func DeleteInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c)
		if !ok {
			return apperr.NotFound("Inventory item")
		}

		var item models.Inventory
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return apperr.NotFound("Inventory item")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return apperr.Internal("Could not delete inventory item.")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "inventory",
			EntityID:    item.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Inventory deleted: %s", item.ItemType),
			Before:      item,
		})

		return c.JSON(fiber.Map{"status": "ok"})
	}
}
