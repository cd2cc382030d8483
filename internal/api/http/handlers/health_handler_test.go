package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/scaffold-rental-service/internal/persistence"
)

func newHealthTestApp() *fiber.App {
	handler := NewHealthHandler("scaffold-rental-service", "test", &persistence.Postgres{})
	app := fiber.New()
	app.Get("/health/live", handler.Live)
	app.Get("/health/ready", handler.Ready)
	return app
}

func TestHealthHandlerLive(t *testing.T) {
	app := newHealthTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHealthHandlerReadyReportsUnavailableDatabase(t *testing.T) {
	app := newHealthTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
