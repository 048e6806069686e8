package requests

import (
	"testing"
	"time"
)

func TestClaimFieldsSet(t *testing.T) {
	pid := uint(4)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	updates := claimFields(&pid, "", now)
	if updates["claimed_platform_id"] != pid {
		t.Errorf("claimed_platform_id = %v, want %v", updates["claimed_platform_id"], pid)
	}
	if updates["claimed_at"] != now {
		t.Errorf("claimed_at = %v, want %v", updates["claimed_at"], now)
	}
	if updates["status"] != "Claimed" {
		t.Errorf("status should default to Claimed, got %v", updates["status"])
	}
}

func TestClaimFieldsCallerStatusWins(t *testing.T) {
	pid := uint(2)
	updates := claimFields(&pid, "In Transit", time.Now())
	if updates["status"] != "In Transit" {
		t.Errorf("caller-supplied status must win, got %v", updates["status"])
	}
}

func TestClaimFieldsClear(t *testing.T) {
	updates := claimFields(nil, "Cancelled", time.Now())

	if v, ok := updates["claimed_platform_id"]; !ok || v != nil {
		t.Errorf("clearing must null claimed_platform_id, got %v", v)
	}
	if v, ok := updates["claimed_at"]; !ok || v != nil {
		t.Errorf("clearing must null claimed_at, got %v", v)
	}
	// Un-claiming never touches status; a status change in the same update
	// is applied independently.
	if _, ok := updates["status"]; ok {
		t.Error("clearing a claim must not set status")
	}
}
