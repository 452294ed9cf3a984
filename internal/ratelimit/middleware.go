package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
)

// Middleware enforces the limiter on every request. A nil limiter is a no-op,
// matching the config switch that disables rate limiting.
func Middleware(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				// RealIP middleware may have rewritten RemoteAddr without a port.
				ip = r.RemoteAddr
			}

			res, ok := l.Allow(ip, r.Method, r.URL.Path)
			if res.Limit > 0 {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			}
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryIn.Seconds())+1))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":   "Too many requests",
					"details": "Rate limit exceeded, retry later",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
