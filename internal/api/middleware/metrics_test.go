package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labstack/echo/v4"

	"github.com/Rohitwap/product-browser/internal/api/middleware"
)

// counterValue finds a counter in the default registry by name and label
// pair, returning -1 when absent.
func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, m := range fam.GetMetric() {
			if matchLabels(m, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return -1
}

func matchLabels(m *dto.Metric, want map[string]string) bool {
	got := map[string]string{}
	for _, lp := range m.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}
	return true
}

func TestMetrics_CountsRoutedRequests(t *testing.T) {
	e := echo.New()
	e.Use(middleware.Metrics())
	e.GET("/products", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	labels := map[string]string{"method": "GET", "path": "/products", "status": "200"}
	before := counterValue(t, "pb_http_requests_total", labels)

	req := httptest.NewRequest(http.MethodGet, "/products", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	after := counterValue(t, "pb_http_requests_total", labels)
	require.GreaterOrEqual(t, after, 1.0)
	if before > 0 {
		assert.InDelta(t, before+1, after, 0.001)
	}
}

func TestMetrics_SkipsOperationalPaths(t *testing.T) {
	e := echo.New()
	e.Use(middleware.Metrics())
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	labels := map[string]string{"method": "GET", "path": "/healthz", "status": "200"}

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// No counter series may exist for the probe path.
	assert.Equal(t, -1.0, counterValue(t, "pb_http_requests_total", labels))
}
