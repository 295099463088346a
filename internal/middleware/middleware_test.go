package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(LegacyHeaders())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return c.Status(fiber.StatusNotFound).SendString("nope") })

	for _, path := range []string{"/ok", "/fail"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, "IE=Edge,chrome=1", resp.Header.Get("X-UA-Compatible"), path)
		assert.Equal(t, "public, max-age=0", resp.Header.Get("Cache-Control"), path)
	}
}

func TestContextMiddleware_PropagatesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "req-123" }}))
	app.Use(ContextMiddleware())
	app.Use(StructuredLogger())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.UserContext().Value(RequestIDKey).(string)
		return c.SendString(rid)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	buf := make([]byte, 16)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, "req-123", string(buf[:n]))
}

func TestInitMetrics_IsIdempotent(t *testing.T) {
	first := InitMetrics("photoshare-test")
	second := InitMetrics("photoshare-test")
	assert.Same(t, first, second)
}
