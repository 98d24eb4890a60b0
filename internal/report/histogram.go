// Package report implements the read-side shaping for the admin reports and
// the public impact dashboard: fixed-window daily histograms and the relative
// timestamps that accompany them.
package report

import (
	"math"
	"time"
)

// DayBucket is one bar in a daily histogram.
type DayBucket struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// Sample is one datapoint feeding a histogram.
type Sample struct {
	CreatedAt time.Time
	Amount    float64
}

// MinBarHeight is the smallest rendered bar, so zero days stay visible.
const MinBarHeight = 6

// maxBarHeight matches the chart area on the admin reports page.
const maxBarHeight = 120

// DailyHistogram buckets samples into a trailing window of days ending at
// now.  Every calendar day in the window gets a bucket initialized to 0,
// oldest first; samples outside the window are dropped silently. A sample
// with a non-finite amount counts as 1 so the count variant of the chart
// still moves.
func DailyHistogram(samples []Sample, days int, now time.Time) []DayBucket {
	if days <= 0 {
		return nil
	}
	keys := make([]string, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := dayKey(now.AddDate(0, 0, -(days - 1 - i)))
		keys[i] = key
		index[key] = i
	}
	buckets := make([]DayBucket, days)
	for i, key := range keys {
		buckets[i] = DayBucket{Day: key}
	}
	for _, s := range samples {
		i, ok := index[dayKey(s.CreatedAt)]
		if !ok {
			continue
		}
		amount := s.Amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 1
		}
		buckets[i].Value += amount
	}
	return buckets
}

// MaxValue returns the scaling denominator for bar heights: the largest
// bucket, floored at 1 so an all-zero window never divides by zero.
func MaxValue(buckets []DayBucket) float64 {
	max := 1.0
	for _, b := range buckets {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}

// BarHeight converts a bucket value to rendered pixels, proportional to the
// window maximum with a visibility floor.
func BarHeight(value, max float64) int {
	if max <= 0 {
		max = 1
	}
	h := int(math.Round(value / max * maxBarHeight))
	if h < MinBarHeight {
		return MinBarHeight
	}
	return h
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
