package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

var allocationCategories = []string{"Youth Training", "Platform Infrastructure", "Outreach & Growth", "Admin"}

func TestReconcileAllocation(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows, err := ReconcileAllocation(allocationCategories, map[string]float64{
		"Youth Training":          50,
		"Platform Infrastructure": 25,
		"Outreach & Growth":       20,
		"Admin":                   5,
	}, now)
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("want 4 rows, got %d", len(rows))
	}
	if rows[0].Category != "Youth Training" || rows[0].Percent != 50 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if !rows[0].UpdatedAt.Equal(now) {
		t.Fatalf("rows must be stamped with now")
	}
}

func TestReconcileAllocationRejectsBadSum(t *testing.T) {
	for _, sum := range []float64{99, 101} {
		submitted := map[string]float64{
			"Youth Training":          sum - 50,
			"Platform Infrastructure": 25,
			"Outreach & Growth":       20,
			"Admin":                   5,
		}
		rows, err := ReconcileAllocation(allocationCategories, submitted, time.Now())
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sum %g: want ErrInvalidInput, got %v", sum, err)
		}
		if rows != nil {
			t.Fatalf("sum %g: no rows may be returned on failure", sum)
		}
		if !strings.Contains(err.Error(), "must sum to 100") {
			t.Fatalf("error must name the rule: %v", err)
		}
	}
}

func TestReconcileAllocationUnknownSubmittedCategoryIgnored(t *testing.T) {
	// Categories drift: only seeded rows are written, extra keys are dropped.
	rows, err := ReconcileAllocation(allocationCategories, map[string]float64{
		"Youth Training":          60,
		"Platform Infrastructure": 20,
		"Outreach & Growth":       15,
		"Admin":                   5,
		"Ghost Category":          40,
	}, time.Now())
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("want 4 rows, got %d", len(rows))
	}
}

func TestReconcileAllocationNonFiniteBecomesZero(t *testing.T) {
	_, err := ReconcileAllocation(allocationCategories, map[string]float64{
		"Youth Training":          math.NaN(),
		"Platform Infrastructure": 60,
		"Outreach & Growth":       35,
		"Admin":                   5,
	}, time.Now())
	if err != nil {
		t.Fatalf("NaN must count as 0, not poison the sum: %v", err)
	}
}

func TestFallbackAllocation(t *testing.T) {
	rows := FallbackAllocation()
	var sum float64
	for _, r := range rows {
		sum += r.Percent
	}
	if sum != 100 {
		t.Fatalf("fallback plan must sum to 100, got %g", sum)
	}
}

func TestAllocationColor(t *testing.T) {
	tests := []struct {
		category, want string
	}{
		{"Youth Training", "yellow"},
		{"Platform Infrastructure", "navy"},
		{"Outreach & Growth", "emerald"},
		{"Admin", "slate"},
		{"Youth Platform", "yellow"}, // first substring match wins
		{"Something Else", "slate"},
	}
	for _, tc := range tests {
		if got := AllocationColor(tc.category); got != tc.want {
			t.Errorf("AllocationColor(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}
