package models

import "time"

// Wastage: append-only log of discarded inventory. Creating one decrements
// the batch's remaining quantity; entries are never updated.
type Wastage struct {
	ID          uint `gorm:"primaryKey"`
	InventoryID uint `gorm:"index;not null"`
	Inventory   Inventory
	Quantity    float64   `gorm:"not null"`
	Reason      string    `gorm:"size:300;not null"`
	LoggedAt    time.Time `gorm:"index;not null;autoCreateTime"`
}
