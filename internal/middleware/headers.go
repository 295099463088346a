package middleware

import "github.com/gofiber/fiber/v2"

// LegacyHeaders sets the compatibility and caching headers every response has always carried.
func LegacyHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set("X-UA-Compatible", "IE=Edge,chrome=1")
		c.Set(fiber.HeaderCacheControl, "public, max-age=0")
		return err
	}
}
