package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/uta-gremial/reclamos-service/internal/auth"
	apperrors "github.com/uta-gremial/reclamos-service/pkg/util"
)

const rateLimitKeyPrefix = "ratelimit:reclamos:"

// ReclamoRateLimiter caps complaint creation per user per rolling day using a
// redis counter with a 24h TTL set on the first increment. When redis is
// unreachable the limiter fails open; complaint intake must not depend on the
// cache tier.
func ReclamoRateLimiter(client *redis.Client, limit int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil || limit <= 0 {
			return c.Next()
		}
		user, ok := auth.UserFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}

		ctx := c.UserContext()
		key := rateLimitKeyPrefix + user.ID

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := client.Expire(ctx, key, 24*time.Hour).Err(); err != nil {
				logger.Warn("rate limiter TTL not set", zap.Error(err))
			}
		}
		if count > int64(limit) {
			retryAfter, _ := client.TTL(ctx, key).Result()
			return apperrors.NewDomainError("RATE_LIMITED", "daily reclamo limit exceeded",
				fiber.StatusTooManyRequests,
				map[string]any{"retry_after_seconds": int64(retryAfter.Seconds())})
		}
		return c.Next()
	}
}
