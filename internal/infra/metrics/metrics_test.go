package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"deliwer/config"
	"deliwer/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounters(t *testing.T) {
	m := New()

	m.TradeInCreated(true, "regular")
	m.TradeInCreated(true, "regular")
	m.TradeInCreated(false, "first_hundred_heroes")
	m.OrderPlaced()
	m.AffiliateRegistered("restaurant")
	m.UserRegistered()
	m.ChallengeProgress("c1", 802400)
	m.ShareRecorded("linkedin")

	assert.InDelta(t, 2, testutil.ToFloat64(m.tradeIns.WithLabelValues("regular", "true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.tradeIns.WithLabelValues("first_hundred_heroes", "false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.orders), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.affiliates.WithLabelValues("restaurant")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.users), 0)
	assert.InDelta(t, 802400, testutil.ToFloat64(m.challengeProgress.WithLabelValues("c1")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.shares.WithLabelValues("linkedin")), 0)
}

func TestNewRecorder(t *testing.T) {
	m := New()

	assert.IsType(t, service.NoopMetrics{}, NewRecorder(&config.Config{}, m))
	assert.Same(t, m, NewRecorder(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}, m))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/trade-ins/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trade-ins/123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/trade-ins/:id", "200")), 0)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "deliwer_http_requests_total")
}
