package database

import (
	"log"

	"foodwise-backend/internal/models"
)

func ptr(f float64) *float64 { return &f }

// seedReferenceData inserts the starter NGOs and food platforms when their
// tables are empty, so a fresh database is immediately usable.
func seedReferenceData() {
	var ngoCount int64
	DB.Model(&models.NGO{}).Count(&ngoCount)
	if ngoCount == 0 {
		ngos := []models.NGO{
			{
				Name:      "Helping Hands",
				Address:   "Near Central Park, New Delhi",
				Latitude:  ptr(28.6139),
				Longitude: ptr(77.2090),
			},
			{
				Name:      "Food for All",
				Address:   "MG Road, Bangalore",
				Latitude:  ptr(12.9716),
				Longitude: ptr(77.5946),
			},
			{
				Name:      "Community Kitchen",
				Address:   "Marine Drive, Mumbai",
				Latitude:  ptr(18.9407),
				Longitude: ptr(72.8353),
			},
		}
		if err := DB.Create(&ngos).Error; err != nil {
			log.Printf("NGO seed failed: %v", err)
		} else {
			log.Println("Seeded reference NGOs")
		}
	}

	var platformCount int64
	DB.Model(&models.FoodPlatform{}).Count(&platformCount)
	if platformCount == 0 {
		platforms := []models.FoodPlatform{
			{
				Name:        "FoodWise Kitchen",
				Address:     "Central Food Hub, New Delhi",
				Latitude:    ptr(28.6139),
				Longitude:   ptr(77.2090),
				Contact:     "foodwise@example.com",
				Description: "Main kitchen facility for food preparation and distribution",
			},
			{
				Name:        "Community Food Center",
				Address:     "Downtown Location, Bangalore",
				Latitude:    ptr(12.9352),
				Longitude:   ptr(77.6245),
				Contact:     "community@example.com",
				Description: "Local food preparation and donation center",
			},
		}
		if err := DB.Create(&platforms).Error; err != nil {
			log.Printf("Food platform seed failed: %v", err)
		} else {
			log.Println("Seeded reference food platforms")
		}
	}
}
