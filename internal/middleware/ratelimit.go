package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit caps requests per client IP in fixed windows. It guards the
// unauthenticated write endpoints (donation intake, contact form, chat,
// request-to-pay); authenticated traffic is not limited.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*rateWindow)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r)
			now := time.Now()

			mu.Lock()
			win, ok := windows[key]
			if !ok || now.After(win.resetAt) {
				win = &rateWindow{resetAt: now.Add(per)}
				windows[key] = win
			}
			if win.count >= limit {
				retry := win.resetAt
				mu.Unlock()
				w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(retry).Seconds())+1))
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			win.count++
			mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}
