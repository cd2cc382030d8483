package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/scaffold-rental-service/internal/config"
	"github.com/spec-kit/scaffold-rental-service/internal/observability"
	apperrors "github.com/spec-kit/scaffold-rental-service/pkg/util"
)

func newTestApp(metrics *observability.Metrics) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, config.Config{})
	return app
}

func TestMiddlewares_RecordRenderedStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := newTestApp(metrics)
	app.Get("/customers/99", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("customer", nil)
	})
	app.Get("/customers", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []string{}})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/customers/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	requests, errorCounts := metrics.Snapshot()
	assert.Equal(t, int64(1), requests["/customers/99|GET|404"])
	assert.Equal(t, int64(1), requests["/customers|GET|200"])
	assert.NotContains(t, requests, "/customers/99|GET|200")
	assert.Equal(t, int64(1), errorCounts["/customers/99|GET|NOT_FOUND"])
}

func TestMiddlewares_PanicRendersInternalError(t *testing.T) {
	metrics := observability.NewMetrics()
	app := newTestApp(metrics)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unreachable state")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	requests, errorCounts := metrics.Snapshot()
	assert.Equal(t, int64(1), requests["/boom|GET|500"])
	assert.Equal(t, int64(1), errorCounts["/boom|GET|INTERNAL_ERROR"])
}
