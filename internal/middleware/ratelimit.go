package middleware

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

const rateLimitKeyPrefix = "hrms:ratelimit"

type windowCounter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimit allows limit requests per client IP within a fixed window. A
// missing counter or a failing store lets requests through.
func RateLimit(counter windowCounter, name string, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 || window <= 0 {
			c.Next()
			return
		}
		key := rateLimitKeyPrefix + ":" + name + ":" + c.ClientIP()
		count, ttl, err := counter.Increment(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("rate limit check failed", zap.String("limiter", name), zap.Error(err))
			c.Next()
			return
		}
		if count == 0 {
			// counter store disabled
			c.Next()
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			retry := int(math.Ceil(ttl.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			response.Abort(c, appErrors.WithDetails(appErrors.ErrTooManyRequests, map[string]int{"retry_after_seconds": retry}))
			return
		}
		c.Next()
	}
}

