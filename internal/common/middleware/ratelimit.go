package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/platform/ratelimit"
)

// RateLimit ограничивает число запросов с одного IP. Ошибка лимитера не блокирует запрос.
func RateLimit(limiter ratelimit.Limiter, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		res, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("Rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		if !res.Allowed {
			Abort(c, errors.NewRateLimitError(res.RetryAfter))
			return
		}

		c.Next()
	}
}
