package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RateLimitKey keys the rate limiter per authenticated user when the
// request carries one, falling back to the client IP for anonymous
// traffic.
func RateLimitKey(c *fiber.Ctx) string {
	if id, ok := AuthedUserID(c); ok {
		return "user:" + id
	}
	return c.IP()
}
