package analytics

import (
	"testing"
	"time"
)

func TestClampDays(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 7},
		{"abc", 7},
		{"14", 14},
		{"1", 1},
		{"0", 1},
		{"-5", 1},
		{"30", 30},
		{"31", 30},
		{"500", 30},
	}
	for _, tt := range tests {
		if got := clampDays(tt.raw); got != tt.want {
			t.Errorf("clampDays(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestTrendLabels(t *testing.T) {
	start := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)
	labels := trendLabels(start, 4)

	want := []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestTrendLabelsAlwaysExactLength(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, days := range []int{1, 7, 30} {
		labels := trendLabels(start, days)
		if len(labels) != days {
			t.Errorf("days=%d: got %d labels", days, len(labels))
		}
		for i := 1; i < len(labels); i++ {
			if labels[i] <= labels[i-1] {
				t.Errorf("labels not strictly ascending at %d: %q then %q", i, labels[i-1], labels[i])
			}
		}
	}
}

func TestAlignSeries(t *testing.T) {
	labels := []string{"2025-01-01", "2025-01-02", "2025-01-03"}
	totals := map[string]float64{
		"2025-01-01": 4,
		"2025-01-03": 2.5,
		"2024-12-31": 99, // outside the range, ignored
	}

	series := alignSeries(labels, totals)
	want := []float64{4, 0, 2.5}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, series[i], want[i])
		}
	}
}

func TestAlignSeriesEmpty(t *testing.T) {
	labels := []string{"2025-01-01", "2025-01-02"}
	series := alignSeries(labels, map[string]float64{})
	for i, v := range series {
		if v != 0 {
			t.Errorf("series[%d] = %v, want 0 for sparse data", i, v)
		}
	}
}
