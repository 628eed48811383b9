package api

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/cinescope/cinescope-server/internal/http/response"
	"github.com/cinescope/cinescope-server/internal/ratelimit"
)

// retryAfterSeconds is advertised to throttled clients.
const retryAfterSeconds = 1

// RateLimitMiddleware creates a middleware that rate limits requests by IP.
// Returns 429 Too Many Requests when limit is exceeded.
//
// The key comes from getClientIP, so the server must run behind a reverse
// proxy that overwrites X-Forwarded-For and X-Real-IP. Exposed directly,
// a client can pick its own bucket by setting those headers.
func RateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
					"request_id", getRequestID(r.Context()),
				)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
				response.TooManyRequests(w, "Too many requests. Please try again later.", logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP returns the host part of RemoteAddr, which RealIP has already
// replaced with the forwarded client address when one is present.
// Forwarding headers are trusted as-is; see RateLimitMiddleware.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
