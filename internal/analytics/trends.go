package analytics

import (
	"fmt"
	"time"
)

const (
	defaultTrendDays = 7
	maxTrendDays     = 30
)

// clampDays parses the ?days query value, falling back to the default when
// missing or unparseable and clamping the result to [1, maxTrendDays].
func clampDays(raw string) int {
	days := defaultTrendDays
	if raw != "" {
		if _, err := fmt.Sscan(raw, &days); err != nil {
			days = defaultTrendDays
		}
	}
	if days < 1 {
		days = 1
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}
	return days
}

// trendLabels builds the ascending ISO date labels for the inclusive range
// [start, start+days-1].
func trendLabels(start time.Time, days int) []string {
	labels := make([]string, days)
	for i := 0; i < days; i++ {
		labels[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	return labels
}

// alignSeries maps per-day totals onto the label order, filling days without
// rows with zero.
func alignSeries(labels []string, totals map[string]float64) []float64 {
	series := make([]float64, len(labels))
	for i, label := range labels {
		series[i] = totals[label]
	}
	return series
}
