package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/pardomauro/goblog/config"
	"github.com/pardomauro/goblog/utils"
)

type visitor struct {
	limiter *rate.Limiter
	expires time.Time
}

var (
	visitors   = map[string]*visitor{}
	visitorsMu sync.Mutex
)

// RateLimit applies a per-IP token bucket, used on the auth endpoints to
// slow down credential stuffing. The configured per-minute budget sets the
// refill rate; burst is half of it.
func RateLimit() gin.HandlerFunc {
	cfg := config.Get()
	perMinute := cfg.RateLimitPerMinute
	if perMinute < 1 {
		perMinute = 1
	}
	limit := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute / 2
	if burst < 1 {
		burst = 1
	}

	return func(ctx *gin.Context) {
		if !getVisitor(ctx.ClientIP(), limit, burst).limiter.Allow() {
			utils.Fail(ctx, http.StatusTooManyRequests, "rate limit exceeded")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func getVisitor(key string, limit rate.Limit, burst int) *visitor {
	visitorsMu.Lock()
	defer visitorsMu.Unlock()

	now := time.Now()
	for k, v := range visitors {
		if now.After(v.expires) {
			delete(visitors, k)
		}
	}

	if v, ok := visitors[key]; ok {
		v.expires = now.Add(5 * time.Minute)
		return v
	}
	v := &visitor{
		limiter: rate.NewLimiter(limit, burst),
		expires: now.Add(5 * time.Minute),
	}
	visitors[key] = v
	return v
}
