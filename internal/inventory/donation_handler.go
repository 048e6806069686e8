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

type NGOSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type DonationResponse struct {
	ID          uint       `json:"id"`
	InventoryID uint       `json:"inventory_id"`
	ItemType    string     `json:"item_type"`
	NGOID       uint       `json:"ngo_id"`
	NGO         NGOSummary `json:"ngo"`
	Quantity    float64    `json:"quantity"`
	DonatedAt   string     `json:"donated_at"`
}

func newDonationResponse(entry models.Donation) DonationResponse {
	return DonationResponse{
		ID:          entry.ID,
		InventoryID: entry.InventoryID,
		ItemType:    entry.Inventory.ItemType,
		NGOID:       entry.NGOID,
		NGO: NGOSummary{
			ID:      entry.NGO.ID,
			Name:    entry.NGO.Name,
			Address: entry.NGO.Address,
		},
		Quantity:  entry.Quantity,
		DonatedAt: entry.DonatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/donations?limit=20
func ListDonationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := parseLimit(c, 20)

		var entries []models.Donation
		if err := database.DB.Preload("Inventory").Preload("NGO").
			Order("donated_at DESC, id DESC").Limit(limit).
			Find(&entries).Error; err != nil {
			return apperr.Internal("Could not list donations.")
		}

		resp := make([]DonationResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, newDonationResponse(e))
		}
		return c.JSON(resp)
	}
}

// POST /api/donations
func CreateDonationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := bodyMap(c)

		inventoryID, invProvided, err := validate.ID("inventory_id", body["inventory_id"])
		if err != nil {
			return err
		}
		ngoID, ngoProvided, err := validate.ID("ngo_id", body["ngo_id"])
		if err != nil {
			return err
		}
		if !invProvided || !ngoProvided {
			return apperr.BadRequest(apperr.KindRequiredFieldMissing, "Inventory ID and NGO ID are required.")
		}
		quantity, err := validate.Positive("Quantity", body["quantity"])
		if err != nil {
			return err
		}

		entry, item, err := RecordDonation(database.DB, inventoryID, ngoID, quantity)
		if err != nil {
			if _, ok := err.(*apperr.Error); ok {
				return err
			}
			return apperr.Internal("Could not record donation.")
		}
		entry.Inventory = item
		if err := database.DB.First(&entry.NGO, "id = ?", entry.NGOID).Error; err != nil {
			return apperr.Internal("Could not load NGO.")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "donation",
			EntityID:    entry.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Donation logged: %s - %.2f to %s", item.ItemType, entry.Quantity, entry.NGO.Name),
			After:       entry,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status": "ok",
			"entry":  newDonationResponse(entry),
		})
	}
}
