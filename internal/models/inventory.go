package models

import (
	"time"

	"gorm.io/datatypes"
)

type FoodCategory string

const (
	CategoryHuman FoodCategory = "Human"
	CategoryPet   FoodCategory = "Pet"
)

// Inventory statuses are advisory: wastage/donation flip them automatically
// when a batch is depleted, but direct edits may store any title-cased value.
const (
	StatusAvailable = "Available"
	StatusSurplus   = "Surplus"
	StatusDonated   = "Donated"
)

// Inventory: a prepared-food batch tracked from production through depletion.
// QuantityRemaining only decreases through wastage/donation (clamped at 0);
// direct edits are the single exception.
type Inventory struct {
	ID                uint           `gorm:"primaryKey"`
	ItemType          string         `gorm:"size:200;not null"`
	Quantity          float64        `gorm:"not null;default:0"` // produced amount
	QuantityRemaining float64        `gorm:"not null;default:0"`
	DatePrepared      datatypes.Date `gorm:"index"`
	Status            string         `gorm:"size:50;not null;default:Available"`
	Category          FoodCategory   `gorm:"size:50;not null;default:Human"`
	PlatformID        *uint          `gorm:"index"`
	Platform          *FoodPlatform
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
