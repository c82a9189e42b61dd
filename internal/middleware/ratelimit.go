package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/modules/serializer"
	"github.com/atelierworks/atelier/internal/pkg/ratelimit"
)

// RateLimit enforces the fixed-window cap per client IP using the injected
// store. A store failure fails open: losing rate limiting for one request
// beats failing a valid one.
func RateLimit(store ratelimit.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := store.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limit store error", zap.Error(err))
			c.Next()
			return
		}

		if !res.Allowed {
			secs := int(math.Ceil(res.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, serializer.RateErr(secs))
			return
		}

		c.Next()
	}
}
