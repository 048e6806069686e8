package requests

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

type NGOSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type PlatformSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type FoodRequestResponse struct {
	ID                uint             `json:"id"`
	NGOID             uint             `json:"ngo_id"`
	NGO               *NGOSummary      `json:"ngo,omitempty"`
	RequestType       string           `json:"request_type"`
	QuantityNeeded    float64          `json:"quantity_needed"`
	Description       string           `json:"description"`
	Urgency           string           `json:"urgency"`
	Status            string           `json:"status"`
	NeededBy          *string          `json:"needed_by"`
	CreatedAt         string           `json:"created_at"`
	ClaimedPlatformID *uint            `json:"claimed_platform_id"`
	ClaimedPlatform   *PlatformSummary `json:"claimed_platform,omitempty"`
	ClaimedQuantity   *float64         `json:"claimed_quantity"`
	ClaimedAt         *string          `json:"claimed_at"`
}

func newFoodRequestResponse(r models.FoodRequest) FoodRequestResponse {
	resp := FoodRequestResponse{
		ID:                r.ID,
		NGOID:             r.NGOID,
		RequestType:       string(r.RequestType),
		QuantityNeeded:    r.QuantityNeeded,
		Description:       r.Description,
		Urgency:           r.Urgency,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt.Format("2006-01-02 15:04:05"),
		ClaimedPlatformID: r.ClaimedPlatformID,
		ClaimedQuantity:   r.ClaimedQuantity,
	}
	if r.NGO.ID != 0 {
		resp.NGO = &NGOSummary{ID: r.NGO.ID, Name: r.NGO.Name, Address: r.NGO.Address}
	}
	if r.NeededBy != nil {
		s := time.Time(*r.NeededBy).Format("2006-01-02")
		resp.NeededBy = &s
	}
	if r.ClaimedPlatform != nil {
		resp.ClaimedPlatform = &PlatformSummary{
			ID:      r.ClaimedPlatform.ID,
			Name:    r.ClaimedPlatform.Name,
			Address: r.ClaimedPlatform.Address,
		}
	}
	if r.ClaimedAt != nil {
		s := r.ClaimedAt.Format("2006-01-02 15:04:05")
		resp.ClaimedAt = &s
	}
	return resp
}

func bodyMap(c *fiber.Ctx) map[string]any {
	data := map[string]any{}
	_ = c.BodyParser(&data)
	return data
}

// GET /api/food-requests?status=&type=
func ListFoodRequestsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("NGO").Preload("ClaimedPlatform").
			Order("created_at DESC, id DESC")

		if status := c.Query("status"); status != "" {
			query = query.Where("status ILIKE ?", "%"+status+"%")
		}
		if requestType := c.Query("type"); requestType != "" {
			query = query.Where("request_type ILIKE ?", "%"+requestType+"%")
		}

		var rows []models.FoodRequest
		if err := query.Find(&rows).Error; err != nil {
			return apperr.Internal("Could not list food requests.")
		}

		resp := make([]FoodRequestResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, newFoodRequestResponse(r))
		}
		return c.JSON(resp)
	}
}

// POST /api/food-requests
func CreateFoodRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := bodyMap(c)

		ngoID, provided, err := validate.ID("ngo_id", body["ngo_id"])
		if err != nil {
			return err
		}
		if !provided {
			return apperr.BadRequest(apperr.KindRequiredFieldMissing, "NGO ID is required.")
		}
		var ngo models.NGO
		if err := database.DB.First(&ngo, "id = ?", ngoID).Error; err != nil {
			return apperr.ReferenceNotFound("NGO")
		}

		quantity, err := validate.Positive("Quantity needed", body["quantity_needed"])
		if err != nil {
			return err
		}
		requestType, err := validate.Category("Request type", body["request_type"], models.CategoryHuman)
		if err != nil {
			return err
		}
		urgency := validate.TitleCase(validate.Clean(body["urgency"], models.UrgencyNormal))
		description := validate.Clean(body["description"], "")
		neededBy, err := validate.OptionalDate("needed_by", body["needed_by"])
		if err != nil {
			return err
		}

		req := models.FoodRequest{
			NGOID:          ngo.ID,
			RequestType:    requestType,
			QuantityNeeded: quantity,
			Description:    description,
			Urgency:        urgency,
			Status:         models.RequestPending,
		}
		if neededBy != nil {
			d := datatypes.Date(*neededBy)
			req.NeededBy = &d
		}
		if err := database.DB.Create(&req).Error; err != nil {
			return apperr.Internal("Could not create food request.")
		}
		req.NGO = ngo

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "food_request",
			EntityID:    req.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Food request created: %s needs %.2f (%s)", ngo.Name, req.QuantityNeeded, req.RequestType),
			After:       req,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status":  "ok",
			"request": newFoodRequestResponse(req),
		})
	}
}

// PUT /api/food-requests/:id
// Merges only the fields present in the body. claimed_platform_id drives the
// claim workflow: setting it stamps claimed_at, clearing it clears both.
func UpdateFoodRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uint
		if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
			return apperr.NotFound("Request")
		}

		var req models.FoodRequest
		if err := database.DB.First(&req, "id = ?", id).Error; err != nil {
			return apperr.NotFound("Request")
		}
		before := req

		body := bodyMap(c)
		updates := map[string]any{}

		var callerStatus string
		if raw, present := body["status"]; present {
			if v := validate.TitleCase(validate.Clean(raw, "")); v != "" {
				updates["status"] = v
				callerStatus = v
			}
		}
		if raw, present := body["urgency"]; present {
			if v := validate.TitleCase(validate.Clean(raw, "")); v != "" {
				updates["urgency"] = v
			}
		}
		if raw, present := body["description"]; present {
			if v := validate.Clean(raw, ""); v != "" {
				updates["description"] = v
			}
		}
		if raw, present := body["claimed_platform_id"]; present {
			pid, provided, err := validate.ID("claimed_platform_id", raw)
			if err != nil {
				return err
			}
			if provided {
				var platform models.FoodPlatform
				if err := database.DB.First(&platform, "id = ?", pid).Error; err != nil {
					return apperr.ReferenceNotFound("Food platform")
				}
				for k, v := range claimFields(&platform.ID, callerStatus, time.Now().UTC()) {
					updates[k] = v
				}
			} else {
				for k, v := range claimFields(nil, "", time.Time{}) {
					updates[k] = v
				}
			}
		}
		if raw, present := body["claimed_quantity"]; present {
			v, err := validate.OptionalFloat("Claimed quantity", raw)
			if err != nil {
				return err
			}
			if v != nil && *v < 0 {
				return apperr.BadRequest(apperr.KindNegativeValue, "Claimed quantity must be non-negative.")
			}
			if v == nil {
				updates["claimed_quantity"] = nil
			} else {
				updates["claimed_quantity"] = *v
			}
		}

		if len(updates) > 0 {
			if err := database.DB.Model(&req).Updates(updates).Error; err != nil {
				return apperr.Internal("Could not update food request.")
			}
		}

		if err := database.DB.Preload("NGO").Preload("ClaimedPlatform").
			First(&req, "id = ?", id).Error; err != nil {
			return apperr.Internal("Could not load food request.")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "food_request",
			EntityID:    req.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Food request updated: #%d (%s)", req.ID, req.Status),
			Before:      before,
			After:       req,
		})

		return c.JSON(fiber.Map{
			"status":  "ok",
			"request": newFoodRequestResponse(req),
		})
	}
}
