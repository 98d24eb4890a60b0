package report

import (
	"fmt"
	"time"
)

// TimeAgo renders the coarse relative timestamps used across the donate page:
// "Just now" under an hour, hours under a day, whole days after that.
func TimeAgo(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours == 1:
		return "1h ago"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}
