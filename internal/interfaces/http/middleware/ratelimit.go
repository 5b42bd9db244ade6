package middleware

import (
	"github.com/gin-gonic/gin"

	"issuehub/internal/infrastructure/ratelimit"
	"issuehub/internal/shared/errors"
	"issuehub/internal/shared/logger"
	"issuehub/internal/shared/utils"
)

// RateLimit enforces the sliding-window budget per client IP. A limiter
// failure fails open so a broken backend does not take the API down.
func RateLimit(limiter ratelimit.RateLimiter, requestsPerMinute int, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), requestsPerMinute)
		if err != nil {
			log.Warnw("rate limiter unavailable", "client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
