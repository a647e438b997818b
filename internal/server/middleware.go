// internal/server/middleware.go
package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/config"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/common/metrics"
	"careers-backend/internal/security"
)

const claimsContextKey = "auth_claims"

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(jwt *security.JWTProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorizedError())
			return
		}

		claims, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortWith(c, apperrors.NewUnauthorizedError())
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RateLimit applies a fixed window per client IP, backed by redis.
func RateLimit(rdb redis.Cmdable, cfg config.RateLimitConfig, scope string, log logger.Logger) gin.HandlerFunc {
	window := time.Duration(cfg.WindowMS) * time.Millisecond
	return func(c *gin.Context) {
		if !cfg.Enabled || rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("careers:ratelimit:%s:%s", scope, c.ClientIP())
		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis being down should not lock clients out.
			log.Warn("Rate limiter unavailable, allowing request", map[string]interface{}{"error": err.Error()})
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(c.Request.Context(), key, window).Err(); err != nil {
				log.Warn("Failed to set rate limit window", map[string]interface{}{"error": err.Error()})
			}
		}
		if count > int64(cfg.Requests) {
			abortWith(c, apperrors.NewRateLimitedError())
			return
		}
		c.Next()
	}
}

// Observe records request metrics and a structured access log line.
func Observe(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		log.Info("Request handled", map[string]interface{}{
			"method":      c.Request.Method,
			"route":       route,
			"status":      status,
			"duration_ms": elapsed.Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
	}
}

func abortWith(c *gin.Context, err *apperrors.StandardError) {
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err.Code), err)
}
