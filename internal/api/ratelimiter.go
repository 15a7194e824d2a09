package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// maxRefillInterval caps the Retry-After hint for very small rates.
const maxRefillInterval = 24 * time.Hour

type rateLimiter interface {
	Allow() bool
}

// tokenBucket wraps rate.Limiter and remembers its refill interval so that
// rejected clients get a Retry-After hint.
type tokenBucket struct {
	limiter *rate.Limiter
	refill  time.Duration
}

func newTokenBucketLimiter(ratePerSecond float64, burst int) *tokenBucket {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}

	refill := maxRefillInterval
	if interval := float64(time.Second) / ratePerSecond; interval < float64(maxRefillInterval) {
		refill = time.Duration(interval)
	}

	return &tokenBucket{
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		refill:  refill,
	}
}

func (l *tokenBucket) Allow() bool {
	if l == nil || l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}

func (l *tokenBucket) retryAfter() time.Duration {
	return l.refill
}

func rateLimitMiddleware(limiter rateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Retry-After", retryAfterSeconds(limiter))
		writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, please retry shortly")
	})
}

func retryAfterSeconds(limiter rateLimiter) string {
	seconds := 1
	if tb, ok := limiter.(*tokenBucket); ok {
		if s := int(math.Ceil(tb.retryAfter().Seconds())); s > seconds {
			seconds = s
		}
	}
	return strconv.Itoa(seconds)
}
