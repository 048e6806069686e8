package models

import "time"

// FoodPlatform: a kitchen/restaurant that produces inventory and may claim
// food requests.
type FoodPlatform struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Address     string `gorm:"size:300"`
	Latitude    *float64
	Longitude   *float64
	Contact     string `gorm:"size:100"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
