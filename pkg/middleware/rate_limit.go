package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"globetrotter/pkg/utils"
)

// RateLimiter hands out one token bucket per caller. Idle buckets expire from the cache.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *gocache.Cache
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 6
	}
	return &RateLimiter{
		limiters: gocache.New(10*time.Minute, 20*time.Minute),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (r *RateLimiter) limiterFor(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.limiters.Get(key); ok {
		r.limiters.SetDefault(key, v)
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(r.limit, r.burst)
	r.limiters.SetDefault(key, l)
	return l
}

func (r *RateLimiter) Allow(key string) bool {
	return r.limiterFor(key).Allow()
}

// Middleware keys on the authenticated user, falling back to the client IP.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(ContextUserID)
		if key == "" {
			key = c.ClientIP()
		}
		if !r.Allow(key) {
			_ = c.Error(utils.ErrRateLimited)
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
