package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RequestPending = "Pending"
	RequestClaimed = "Claimed"
	UrgencyNormal  = "Normal"
)

// FoodRequest: an NGO's open ask for food. A platform claims it by setting
// ClaimedPlatformID, which stamps ClaimedAt; clearing the claim clears both.
type FoodRequest struct {
	ID                uint          `gorm:"primaryKey"`
	NGOID             uint          `gorm:"column:ngo_id;index;not null"`
	NGO               NGO           `gorm:"foreignKey:NGOID"`
	RequestType       FoodCategory  `gorm:"size:50;not null;default:Human"`
	QuantityNeeded    float64       `gorm:"not null"`
	Description       string        `gorm:"size:500"`
	Urgency           string        `gorm:"size:50;not null;default:Normal"`
	Status            string        `gorm:"size:50;not null;default:Pending"`
	NeededBy          *datatypes.Date
	CreatedAt         time.Time     `gorm:"index"`
	ClaimedPlatformID *uint         `gorm:"index"`
	ClaimedPlatform   *FoodPlatform `gorm:"foreignKey:ClaimedPlatformID"`
	ClaimedQuantity   *float64
	ClaimedAt         *time.Time
}
