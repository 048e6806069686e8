package models

import "time"

// Donation: append-only log of inventory handed over to an NGO. Creating one
// decrements the batch's remaining quantity; entries are never updated.
type Donation struct {
	ID          uint `gorm:"primaryKey"`
	InventoryID uint `gorm:"index;not null"`
	Inventory   Inventory
	NGOID       uint      `gorm:"column:ngo_id;index;not null"`
	NGO         NGO       `gorm:"foreignKey:NGOID"`
	Quantity    float64   `gorm:"not null"`
	DonatedAt   time.Time `gorm:"index;not null;autoCreateTime"`
}
