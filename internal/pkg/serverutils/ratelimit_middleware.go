package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"ai-tutor-be/internal/pkg/ratelimit"
)

// NewAnonRateLimitMiddleware throttles unauthenticated requests per client IP.
// Must run after the optional JWT middleware so authenticated calls pass through.
func NewAnonRateLimitMiddleware(limiter *ratelimit.Limiter) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Locals("user_id") != nil {
			return ctx.Next()
		}
		if !limiter.Allow(ctx.IP()) {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(ErrorResponse(fiber.StatusTooManyRequests, "Too many requests, please try again later"))
		}
		return ctx.Next()
	}
}
