package requests

import (
	"time"

	"foodwise-backend/internal/models"
)

// claimFields returns the column updates applied when claimed_platform_id is
// part of an update. Claiming stamps claimed_at and resolves the status to
// the caller-supplied value or "Claimed"; clearing removes the claim and its
// timestamp unconditionally, leaving any other updated fields alone.
func claimFields(platformID *uint, status string, now time.Time) map[string]any {
	if platformID == nil {
		return map[string]any{
			"claimed_platform_id": nil,
			"claimed_at":          nil,
		}
	}
	if status == "" {
		status = models.RequestClaimed
	}
	return map[string]any{
		"claimed_platform_id": *platformID,
		"claimed_at":          now,
		"status":              status,
	}
}
