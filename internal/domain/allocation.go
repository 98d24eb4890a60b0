package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// AllocationRow is one budget category's target share of donations. Rows are
// seeded out-of-band; reconciliation only rewrites percent and updated_at.
type AllocationRow struct {
	Category  string
	Percent   float64
	Active    bool
	UpdatedAt time.Time
}

// FallbackAllocation is shown on the public dashboard when no rows are
// active. It is presentation only and is never persisted.
func FallbackAllocation() []AllocationRow {
	return []AllocationRow{
		{Category: "Youth Training", Percent: 60, Active: true},
		{Category: "Platform Infrastructure", Percent: 20, Active: true},
		{Category: "Outreach & Growth", Percent: 15, Active: true},
		{Category: "Admin", Percent: 5, Active: true},
	}
}

// ReconcileAllocation maps each existing category to its submitted percent
// (non-finite and missing values fall back to 0) and rejects the whole batch
// unless the percentages sum to exactly 100. On success it returns the rows
// to upsert, stamped with now.
func ReconcileAllocation(categories []string, submitted map[string]float64, now time.Time) ([]AllocationRow, error) {
	rows := make([]AllocationRow, 0, len(categories))
	var sum float64
	for _, cat := range categories {
		pct := submitted[cat]
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			pct = 0
		}
		sum += pct
		rows = append(rows, AllocationRow{Category: cat, Percent: pct, UpdatedAt: now})
	}
	if sum != 100 {
		return nil, fmt.Errorf("%w: allocation must sum to 100 (currently %g)", ErrInvalidInput, sum)
	}
	return rows, nil
}

// AllocationColor maps a category to its public bar color. Matching is on
// lowercased substrings and the first match wins, so a category named
// "Youth Platform" renders yellow, not navy.
func AllocationColor(category string) string {
	key := strings.ToLower(category)
	switch {
	case strings.Contains(key, "youth") || strings.Contains(key, "training"):
		return "yellow"
	case strings.Contains(key, "platform") || strings.Contains(key, "infrastructure"):
		return "navy"
	case strings.Contains(key, "outreach") || strings.Contains(key, "growth"):
		return "emerald"
	default:
		return "slate"
	}
}
