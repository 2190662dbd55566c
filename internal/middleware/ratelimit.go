package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"meeting-tracker/pkg/response"
)

// Category selects which per-minute budget a route draws from.
type Category string

const (
	CategoryLLM    Category = "llm"
	CategoryCRUD   Category = "crud"
	CategoryHealth Category = "health"
)

// RateLimit enforces the per-client budget of the given category.
// Rejected requests get 429 with Retry-After and X-RateLimit-* headers.
func (m Middleware) RateLimit(cat Category) gin.HandlerFunc {
	rl, ok := m.limiters[cat]
	if !ok {
		rl = m.limiters[CategoryCRUD]
	}
	return func(c *gin.Context) {
		key := extractIP(c.Request)
		res := rl.allow(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		if !res.allowed {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(res.retryAfter.Seconds()))))
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s budget exceeded for %s", cat, key)
			response.TooManyRequests(c)
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.remaining))
		c.Next()
	}
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fallback to RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || ip == "" {
		return "unknown"
	}
	return ip
}

// rateLimiter is a per-key token bucket with auto-cleanup of idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	limit    int
	now      func() time.Time
}

type limitResult struct {
	allowed    bool
	remaining  int
	retryAfter time.Duration
}

// newRateLimiter allows requestsPerMin requests in a burst, refilling
// continuously over one minute.
func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000,         // Max unique clients tracked
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		limit: requestsPerMin,
		now:   time.Now,
	}
}

func (rl *rateLimiter) allow(key string) limitResult {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.limit)
		rl.limiters.Add(key, limiter)
	}

	now := rl.now()
	r := limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return limitResult{allowed: false, retryAfter: delay}
	}

	remaining := int(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return limitResult{allowed: true, remaining: remaining}
}
