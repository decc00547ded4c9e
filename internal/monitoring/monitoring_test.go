package monitoring

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	metrics.RequestsTotal.WithLabelValues("GET", "/courses", "200").Inc()
	metrics.AuthDenialsTotal.WithLabelValues("secret mismatch").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		metrics.RequestsTotal.WithLabelValues("GET", "/courses", "200"),
	))
	assert.Equal(t, 2.0, testutil.ToFloat64(
		metrics.AuthDenialsTotal.WithLabelValues("secret mismatch"),
	))
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	metrics.RequestsTotal.WithLabelValues("GET", "/courses", "200").Inc()

	handler := NewHandler(reg)

	t.Run("metrics endpoint", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		require.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), "syllabus_http_requests_total")
	})

	t.Run("liveness endpoint", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health/live", nil))
		require.Equal(t, 200, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})
}
