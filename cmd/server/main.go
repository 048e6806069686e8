package main

import (
	"errors"
	"log"
	"strings"

	"foodwise-backend/internal/analytics"
	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/audit"
	"foodwise-backend/internal/config"
	"foodwise-backend/internal/database"
	"foodwise-backend/internal/inventory"
	"foodwise-backend/internal/partners"
	"foodwise-backend/internal/requests"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.Status).JSON(fiber.Map{
					"status": "error",
					"code":   string(appErr.Kind),
					"error":  appErr.Message,
				})
			}
			if e, ok := err.(*fiber.Error); ok {
				kind := apperr.KindInternal
				if e.Code == fiber.StatusNotFound {
					kind = apperr.KindNotFound
				}
				return c.Status(e.Code).JSON(fiber.Map{
					"status": "error",
					"code":   string(kind),
					"error":  e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error",
				"code":   string(apperr.KindInternal),
				"error":  "An unexpected error occurred.",
			})
		},
	})

	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Inventory
	api.Get("/inventory", inventory.ListInventoryHandler())
	api.Post("/inventory", inventory.CreateInventoryHandler())
	api.Get("/inventory/:id", inventory.GetInventoryHandler())
	api.Put("/inventory/:id", inventory.UpdateInventoryHandler())
	api.Delete("/inventory/:id", inventory.DeleteInventoryHandler())

	// Wastage & donation logs
	api.Get("/wastage", inventory.ListWastageHandler())
	api.Post("/wastage", inventory.CreateWastageHandler())
	api.Get("/donations", inventory.ListDonationsHandler())
	api.Post("/donations", inventory.CreateDonationHandler())

	// Restaurant channel
	api.Post("/submissions", inventory.CreateSubmissionHandler())

	// Directory & map
	api.Get("/ngos", partners.ListNGOsHandler())
	api.Get("/platforms", partners.ListPlatformsHandler())
	api.Get("/locations", partners.ListLocationsHandler())

	// Food requests
	api.Get("/food-requests", requests.ListFoodRequestsHandler())
	api.Post("/food-requests", requests.CreateFoodRequestHandler())
	api.Put("/food-requests/:id", requests.UpdateFoodRequestHandler())

	// Reporting
	api.Get("/analytics", analytics.TotalsHandler())
	api.Get("/analytics/trends", analytics.TrendsHandler())
	api.Get("/health", analytics.HealthHandler())

	// Activity trail
	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
