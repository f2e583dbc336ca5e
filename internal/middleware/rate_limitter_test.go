package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimiterFrom_ReusesLimiterPerIP(t *testing.T) {
	limiter := newRateLimiter(1, 1)

	first := limiter.GetLimiterFrom("10.0.0.1")
	second := limiter.GetLimiterFrom("10.0.0.1")
	other := limiter.GetLimiterFrom("10.0.0.2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestNewRateLimiter_BlocksAfterBurst(t *testing.T) {
	m := &middleware{
		rateLimitter: newRateLimiter(1, 2),
		log:          logrus.New(),
	}

	app := fiber.New()
	app.Use(m.NewRateLimiter)
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestNewRateLimiter_TracksIPsIndependently(t *testing.T) {
	m := &middleware{
		rateLimitter: newRateLimiter(1, 1),
		log:          logrus.New(),
	}

	app := fiber.New(fiber.Config{ProxyHeader: fiber.HeaderXForwardedFor})
	app.Use(m.NewRateLimiter)
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	exhaust := httptest.NewRequest(http.MethodGet, "/", nil)
	exhaust.Header.Set("X-Forwarded-For", "10.0.0.1")

	resp, err := app.Test(exhaust)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	blocked := httptest.NewRequest(http.MethodGet, "/", nil)
	blocked.Header.Set("X-Forwarded-For", "10.0.0.1")

	resp, err = app.Test(blocked)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.Header.Set("X-Forwarded-For", "10.0.0.2")

	resp, err = app.Test(other)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
