package database

import (
	"log"

	"foodwise-backend/internal/config"
	"foodwise-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.FoodPlatform{},
		&models.NGO{},
		&models.Inventory{},
		&models.Wastage{},
		&models.Donation{},
		&models.FoodRequest{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedReferenceData()

	log.Println("Database connected. Migration complete.")
}
