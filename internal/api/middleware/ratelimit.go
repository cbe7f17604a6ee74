package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/hris-cloud/pkg/response"
	"golang.org/x/time/rate"
)

// KeyedLimiter holds one token bucket per key. A bucket allows limit
// requests at once and refills to full over window.
type KeyedLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewKeyedLimiter(limit int, window time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow consumes one token for key.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		every := l.window / time.Duration(l.limit)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), l.limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	if len(l.buckets) > 10000 {
		l.evict(now)
	}
	return allowed
}

// evict drops buckets idle for a full window; they would be full again.
func (l *KeyedLimiter) evict(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.window {
			delete(l.buckets, k)
		}
	}
}

// ClientIP returns the first X-Forwarded-For hop, falling back to the
// connection address.
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	if ip := c.RemoteIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// ApplyRateLimit guards public submissions per client IP and per target
// posting.
func ApplyRateLimit(perIP, perProject int, window time.Duration) gin.HandlerFunc {
	ipLimiter := NewKeyedLimiter(perIP, window)
	projectLimiter := NewKeyedLimiter(perProject, window)
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return func(c *gin.Context) {
		if !ipLimiter.Allow("ip:" + ClientIP(c)) {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{
				Error: fmt.Sprintf("Rate limit exceeded: maximum %d applications per hour from your IP", perIP),
			})
			return
		}

		key := ""
		if id, ok := parseProjectHeader(c); ok {
			key = "project:" + id.String()
		} else if apiKey := strings.TrimSpace(c.GetHeader("x-api-key")); apiKey != "" {
			key = "key:" + apiKey
		}
		if key != "" && !projectLimiter.Allow(key) {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{
				Error: fmt.Sprintf("Rate limit exceeded: maximum %d applications per hour for this project", perProject),
			})
			return
		}

		c.Next()
	}
}
