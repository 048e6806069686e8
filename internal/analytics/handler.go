package analytics

import (
	"fmt"
	"time"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/database"
	"foodwise-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TotalsResponse struct {
	TotalWasted    float64 `json:"total_wasted"`
	TotalDonated   float64 `json:"total_donated"`
	TotalInventory float64 `json:"total_inventory"`
	TotalRemaining float64 `json:"total_remaining"`
}

type TrendsResponse struct {
	Labels   []string  `json:"labels"`
	Wasted   []float64 `json:"wasted"`
	Donated  []float64 `json:"donated"`
	Produced []float64 `json:"produced"`
}

func sumColumn(model any, column string) (float64, error) {
	var total float64
	err := database.DB.Model(model).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column)).
		Scan(&total).Error
	return total, err
}

// GET /api/analytics
func TotalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		totalWasted, err := sumColumn(&models.Wastage{}, "quantity")
		if err != nil {
			return apperr.Internal("Could not compute totals.")
		}
		totalDonated, err := sumColumn(&models.Donation{}, "quantity")
		if err != nil {
			return apperr.Internal("Could not compute totals.")
		}
		totalInventory, err := sumColumn(&models.Inventory{}, "quantity")
		if err != nil {
			return apperr.Internal("Could not compute totals.")
		}
		totalRemaining, err := sumColumn(&models.Inventory{}, "quantity_remaining")
		if err != nil {
			return apperr.Internal("Could not compute totals.")
		}

		return c.JSON(TotalsResponse{
			TotalWasted:    totalWasted,
			TotalDonated:   totalDonated,
			TotalInventory: totalInventory,
			TotalRemaining: totalRemaining,
		})
	}
}

type trendRow struct {
	Day   time.Time `gorm:"column:day"`
	Total float64   `gorm:"column:total"`
}

// dailyTotals groups a table's quantity sums by calendar day from start on.
// Rows with a null grouping date never match the filter and drop out.
func dailyTotals(model any, dateExpr string, start time.Time) (map[string]float64, error) {
	var rows []trendRow
	err := database.DB.Model(model).
		Select(dateExpr+" AS day, SUM(quantity) AS total").
		Where(dateExpr+" >= ?", start).
		Group("day").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, r := range rows {
		totals[r.Day.Format("2006-01-02")] = r.Total
	}
	return totals, nil
}

// GET /api/analytics/trends?days=7
func TrendsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := clampDays(c.Query("days"))

		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start := today.AddDate(0, 0, -(days - 1))

		wasted, err := dailyTotals(&models.Wastage{}, "DATE(logged_at)", start)
		if err != nil {
			return apperr.Internal("Could not compute trends.")
		}
		donated, err := dailyTotals(&models.Donation{}, "DATE(donated_at)", start)
		if err != nil {
			return apperr.Internal("Could not compute trends.")
		}
		produced, err := dailyTotals(&models.Inventory{}, "date_prepared", start)
		if err != nil {
			return apperr.Internal("Could not compute trends.")
		}

		labels := trendLabels(start, days)
		return c.JSON(TrendsResponse{
			Labels:   labels,
			Wasted:   alignSeries(labels, wasted),
			Donated:  alignSeries(labels, donated),
			Produced: alignSeries(labels, produced),
		})
	}
}

// GET /api/health
func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var inventoryCount, ngoCount int64
		if err := database.DB.Model(&models.Inventory{}).Count(&inventoryCount).Error; err != nil {
			return apperr.Internal("Health check failed.")
		}
		if err := database.DB.Model(&models.NGO{}).Count(&ngoCount).Error; err != nil {
			return apperr.Internal("Health check failed.")
		}

		return c.JSON(fiber.Map{
			"status":          "ok",
			"inventory_items": inventoryCount,
			"ngos":            ngoCount,
		})
	}
}
