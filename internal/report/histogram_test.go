package report

import (
	"math"
	"testing"
	"time"
)

func TestDailyHistogram(t *testing.T) {
	now := time.Date(2026, 3, 20, 15, 30, 0, 0, time.UTC)
	samples := []Sample{
		{CreatedAt: now.Add(-2 * time.Hour), Amount: 50},
		{CreatedAt: now.Add(-5 * time.Hour), Amount: 25},
		{CreatedAt: now.AddDate(0, 0, -3), Amount: 200},
		{CreatedAt: now.AddDate(0, 0, -20), Amount: 1000}, // outside the window
	}

	buckets := DailyHistogram(samples, 14, now)
	if len(buckets) != 14 {
		t.Fatalf("want 14 buckets, got %d", len(buckets))
	}
	if buckets[0].Day != "2026-03-07" {
		t.Fatalf("window must start 13 days back, got %s", buckets[0].Day)
	}
	last := buckets[len(buckets)-1]
	if last.Day != "2026-03-20" || last.Value != 75 {
		t.Fatalf("today's bucket wrong: %+v", last)
	}
	if buckets[10].Day != "2026-03-17" || buckets[10].Value != 200 {
		t.Fatalf("three-days-back bucket wrong: %+v", buckets[10])
	}
	var total float64
	for _, b := range buckets {
		total += b.Value
	}
	if total != 275 {
		t.Fatalf("out-of-window sample must be dropped, total %g", total)
	}
}

func TestDailyHistogramNonFiniteCountsAsOne(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	buckets := DailyHistogram([]Sample{{CreatedAt: now, Amount: math.NaN()}}, 1, now)
	if buckets[0].Value != 1 {
		t.Fatalf("NaN sample must count as 1, got %g", buckets[0].Value)
	}
}

func TestDailyHistogramEmptyWindow(t *testing.T) {
	if DailyHistogram(nil, 0, time.Now()) != nil {
		t.Fatal("zero days must return nil")
	}
	buckets := DailyHistogram(nil, 14, time.Now())
	for _, b := range buckets {
		if b.Value != 0 {
			t.Fatalf("empty window bucket must be 0: %+v", b)
		}
	}
}

func TestMaxValue(t *testing.T) {
	if got := MaxValue(nil); got != 1 {
		t.Fatalf("empty max must floor at 1, got %g", got)
	}
	buckets := []DayBucket{{Value: 0}, {Value: 75}, {Value: 20}}
	if got := MaxValue(buckets); got != 75 {
		t.Fatalf("want 75, got %g", got)
	}
}

func TestBarHeight(t *testing.T) {
	tests := []struct {
		value, max float64
		want       int
	}{
		{75, 75, 120},
		{0, 75, MinBarHeight},
		{1, 1000, MinBarHeight}, // tiny values keep the visibility floor
		{37.5, 75, 60},
	}
	for _, tc := range tests {
		if got := BarHeight(tc.value, tc.max); got != tc.want {
			t.Errorf("BarHeight(%g, %g) = %d, want %d", tc.value, tc.max, got, tc.want)
		}
	}
}
