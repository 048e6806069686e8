package inventory

import (
	"errors"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Deplete subtracts qty from remaining, clamped at zero. The boolean reports
// whether the batch landed on exactly zero, which is what flips the status.
func Deplete(remaining, qty float64) (float64, bool) {
	r := remaining - qty
	if r < 0 {
		r = 0
	}
	return r, r == 0
}

// RecordWastage inserts a wastage log entry and decrements the batch's
// remaining quantity in one transaction. The inventory row is locked FOR
// UPDATE so concurrent wastage/donation calls serialize their decrements.
func RecordWastage(db *gorm.DB, inventoryID uint, quantity float64, reason string) (models.Wastage, models.Inventory, error) {
	var entry models.Wastage
	var item models.Inventory

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", inventoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ReferenceNotFound("Inventory item")
			}
			return err
		}

		remaining, depleted := Deplete(item.QuantityRemaining, quantity)
		item.QuantityRemaining = remaining
		if depleted {
			item.Status = models.StatusSurplus
		}

		if err := tx.Model(&models.Inventory{}).Where("id = ?", item.ID).
			Updates(map[string]any{
				"quantity_remaining": item.QuantityRemaining,
				"status":             item.Status,
			}).Error; err != nil {
			return err
		}

		entry = models.Wastage{
			InventoryID: item.ID,
			Quantity:    quantity,
			Reason:      reason,
		}
		return tx.Create(&entry).Error
	})

	return entry, item, err
}

// RecordDonation mirrors RecordWastage but also validates the NGO and flips
// a fully depleted batch to Donated instead of Surplus.
func RecordDonation(db *gorm.DB, inventoryID, ngoID uint, quantity float64) (models.Donation, models.Inventory, error) {
	var entry models.Donation
	var item models.Inventory

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", inventoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ReferenceNotFound("Inventory item")
			}
			return err
		}

		var ngo models.NGO
		if err := tx.First(&ngo, "id = ?", ngoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ReferenceNotFound("NGO")
			}
			return err
		}

		remaining, depleted := Deplete(item.QuantityRemaining, quantity)
		item.QuantityRemaining = remaining
		if depleted {
			item.Status = models.StatusDonated
		}

		if err := tx.Model(&models.Inventory{}).Where("id = ?", item.ID).
			Updates(map[string]any{
				"quantity_remaining": item.QuantityRemaining,
				"status":             item.Status,
			}).Error; err != nil {
			return err
		}

		entry = models.Donation{
			InventoryID: item.ID,
			NGOID:       ngo.ID,
			Quantity:    quantity,
		}
		return tx.Create(&entry).Error
	})

	return entry, item, err
}
