package partners

import (
	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/database"
	"foodwise-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type NGOResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type PlatformResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Contact     string   `json:"contact"`
	Description string   `json:"description"`
}

func newNGOResponse(n models.NGO) NGOResponse {
	return NGOResponse{
		ID:        n.ID,
		Name:      n.Name,
		Address:   n.Address,
		Latitude:  n.Latitude,
		Longitude: n.Longitude,
	}
}

func newPlatformResponse(p models.FoodPlatform) PlatformResponse {
	return PlatformResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Contact:     p.Contact,
		Description: p.Description,
	}
}

// GET /api/ngos
func ListNGOsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ngos []models.NGO
		if err := database.DB.Order("id ASC").Find(&ngos).Error; err != nil {
			return apperr.Internal("Could not list NGOs.")
		}

		resp := make([]NGOResponse, 0, len(ngos))
		for _, n := range ngos {
			resp = append(resp, newNGOResponse(n))
		}
		return c.JSON(resp)
	}
}

// GET /api/platforms
func ListPlatformsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var platforms []models.FoodPlatform
		if err := database.DB.Order("id ASC").Find(&platforms).Error; err != nil {
			return apperr.Internal("Could not list food platforms.")
		}

		resp := make([]PlatformResponse, 0, len(platforms))
		for _, p := range platforms {
			resp = append(resp, newPlatformResponse(p))
		}
		return c.JSON(resp)
	}
}

// GET /api/locations
// Geo subset for the map view: only rows with both coordinates set.
func ListLocationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ngos []models.NGO
		if err := database.DB.
			Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Find(&ngos).Error; err != nil {
			return apperr.Internal("Could not list NGO locations.")
		}

		var platforms []models.FoodPlatform
		if err := database.DB.
			Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Find(&platforms).Error; err != nil {
			return apperr.Internal("Could not list platform locations.")
		}

		ngoResp := make([]NGOResponse, 0, len(ngos))
		for _, n := range ngos {
			ngoResp = append(ngoResp, newNGOResponse(n))
		}
		platformResp := make([]PlatformResponse, 0, len(platforms))
		for _, p := range platforms {
			platformResp = append(platformResp, newPlatformResponse(p))
		}

		return c.JSON(fiber.Map{
			"ngos":      ngoResp,
			"platforms": platformResp,
		})
	}
}
