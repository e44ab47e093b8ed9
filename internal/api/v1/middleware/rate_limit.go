package middleware

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"perfsmell/internal/cache"
)

const (
	clientIdleTTL       = 5 * time.Minute
	clientCleanupPeriod = time.Minute
)

// RateLimit allows each remote address rps requests per second with the given
// burst. Limiters for clients idle longer than five minutes are dropped.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	clients := cache.New[*rate.Limiter](clientIdleTTL, clientCleanupPeriod)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := clients.GetOrCreate(remoteHost(r), func() *rate.Limiter {
				return rate.NewLimiter(rate.Limit(rps), burst)
			})

			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// X-Forwarded-For is not trusted here since any client can set it.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
