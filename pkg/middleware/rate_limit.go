package middleware

import (
	"net/http"
	"sync"

	"github.com/cardforge/cardforge/pkg/metrics"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterStore holds one token bucket per client key for a single middleware.
type limiterStore struct {
	buckets sync.Map // map[string]*rate.Limiter
	rps     float64
	burst   int
}

// get returns (and lazily creates) the bucket for key
func (s *limiterStore) get(key string) *rate.Limiter {
	if v, ok := s.buckets.Load(key); ok {
		return v.(*rate.Limiter)
	}
	v, _ := s.buckets.LoadOrStore(key, rate.NewLimiter(rate.Limit(s.rps), s.burst))
	return v.(*rate.Limiter)
}

// clientKey identifies the caller. There are no accounts, so the client IP is
// the only key.
func clientKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

// RateLimitMiddleware returns a Gin middleware enforcing a token-bucket limit per
// client IP. Each call gets its own buckets, so routes wrapped separately are
// limited separately. rps = allowed events per second, burst = bucket size.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	store := &limiterStore{rps: rps, burst: burst}
	return func(c *gin.Context) {
		if !store.get(clientKey(c)).Allow() {
			c.Header("Retry-After", "1")
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}
