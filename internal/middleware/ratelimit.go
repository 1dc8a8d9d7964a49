package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindscape-app/backend/pkg/clientip"
)

const (
	rateLimitWindow      = 120 * time.Second
	rateLimitMaxRequests = 60
	rateLimitKeyPrefix   = "ratelimit:"
)

// RateLimit enforces a per-IP request budget backed by Redis. When Redis is
// unreachable the request is allowed through: losing rate limiting is better
// than refusing journal writes.
func RateLimit(rdb *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientip.FromRequest(r)
			key := rateLimitKeyPrefix + ip
			ctx := r.Context()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Fail open
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, rateLimitWindow)
			}

			if count > rateLimitMaxRequests {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, `{"error":"Rate limit exceeded. Please try again later.","retry_after":%d}`, int(rateLimitWindow.Seconds()))
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimitMaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(rateLimitMaxRequests-count, 10))

			next.ServeHTTP(w, r)
		})
	}
}
