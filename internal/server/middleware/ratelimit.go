package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/indusign/indusign/internal/server/response"
	"github.com/indusign/indusign/pkg/constants"
	"github.com/indusign/indusign/pkg/errors"
)

// RateLimiter implements token bucket rate limiting per client address.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	logger   *zerolog.Logger
	now      func() time.Time

	// trustProxy keys clients on X-Forwarded-For instead of the peer address.
	trustProxy bool
}

// visitor tracks rate limit state for a single client.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter.
// perMinute is the sustained request budget per client; it is also the burst.
// Clients are keyed on their peer address unless trustProxy is set, in which
// case the first X-Forwarded-For hop is used.
func NewRateLimiter(perMinute int, logger *zerolog.Logger, trustProxy bool) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(constants.RateLimitWindow / time.Duration(perMinute)),
		burst:    perMinute,
		ttl:      constants.RateLimitVisitorTTL,
		logger:   logger,
		now:      time.Now,

		trustProxy: trustProxy,
	}
}

// Run evicts idle clients until ctx is cancelled.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

// evictIdle drops limiters that have not been used within the TTL.
func (rl *RateLimiter) evictIdle() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.ttl)
	evicted := 0
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
			evicted++
		}
	}
	return evicted
}

// Visitors returns the number of tracked clients.
func (rl *RateLimiter) Visitors() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// allow consumes a token for key. When none is available it reports how long
// the client should wait before retrying.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	limiter := v.limiter
	rl.mu.Unlock()

	if limiter.AllowN(now, 1) {
		return true, 0
	}

	reservation := limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	reservation.CancelAt(now)
	return false, delay
}

// RateLimit middleware limits requests per client address.
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r, rl.trustProxy)

			ok, retryAfter := rl.allow(key)
			if !ok {
				rl.logger.Warn().
					Err(errors.ErrRateLimited).
					Str("client", key).
					Str("path", r.URL.Path).
					Dur("retry_after", retryAfter).
					Msg("Rate limit exceeded")

				response.RateLimited(w, int(math.Ceil(retryAfter.Seconds())))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller: the remote host without its port, or the
// first X-Forwarded-For hop when the proxy in front is trusted to set it.
func clientKey(r *http.Request, trustProxy bool) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); trustProxy && forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
