package requestlog

import (
	"errors"
	"net/http/httptest"
	"testing"

	"eshop-catalog/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(New(zap.New(core)))
	app.Get("/api/games", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	req := httptest.NewRequest("GET", "/api/games", nil)
	req.Header.Set(rayid.HeaderName, "ray-1")
	_, err := app.Test(req)
	require.NoError(t, err)

	entries := logs.FilterMessage("Request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ray-1", fields["ray_id"])
	assert.Equal(t, "/api/games", fields["path"])
	assert.Equal(t, int64(200), fields["status"])

	_, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Request error").Len())
}
