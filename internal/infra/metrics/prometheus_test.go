package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_AffiliateCounters(t *testing.T) {
	m := New()

	m.ClickTracked("chewy")
	m.ClickTracked("chewy")
	m.ConversionTracked("chewy", 4.5)
	m.ConversionTracked("chewy", 0)

	assert.InDelta(t, 2, testutil.ToFloat64(m.affiliateClicks.WithLabelValues("chewy")), 0.0001)
	assert.InDelta(t, 2, testutil.ToFloat64(m.affiliateConversions.WithLabelValues("chewy")), 0.0001)
	assert.InDelta(t, 4.5, testutil.ToFloat64(m.affiliateRevenue.WithLabelValues("chewy")), 0.0001)
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/businesses/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses/abc", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/businesses/:id", "204")), 0.0001)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "petplace_http_requests_total"))
}

func TestMetrics_RegisterDB(t *testing.T) {
	m := New()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, m.RegisterDB(db, "petplace"))
	assert.Error(t, m.RegisterDB(db, "petplace"), "a second collector for the same db is a duplicate")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), `go_sql_open_connections{db_name="petplace"}`)
}
