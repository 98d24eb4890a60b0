package report

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{59 * time.Minute, "Just now"},
		{time.Hour, "1h ago"},
		{90 * time.Minute, "1h ago"},
		{3 * time.Hour, "3h ago"},
		{23 * time.Hour, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{26 * time.Hour, "1d ago"},
		{72 * time.Hour, "3d ago"},
	}
	for _, tc := range tests {
		if got := TimeAgo(now.Add(-tc.ago), now); got != tc.want {
			t.Errorf("TimeAgo(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}
