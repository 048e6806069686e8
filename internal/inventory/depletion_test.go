package inventory

import "testing"

func TestDeplete(t *testing.T) {
	tests := []struct {
		name          string
		remaining     float64
		qty           float64
		wantRemaining float64
		wantDepleted  bool
	}{
		{"partial", 10, 4, 6, false},
		{"exact", 6, 6, 0, true},
		{"overdraw clamps to zero", 3, 10, 0, true},
		{"already empty", 0, 5, 0, true},
		{"fractional", 2.5, 1.25, 1.25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, depleted := Deplete(tt.remaining, tt.qty)
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
			if depleted != tt.wantDepleted {
				t.Errorf("depleted = %v, want %v", depleted, tt.wantDepleted)
			}
			if remaining < 0 {
				t.Errorf("remaining must never go negative, got %v", remaining)
			}
		})
	}
}
