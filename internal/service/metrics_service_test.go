package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/departments", 200, 10*time.Millisecond)
	m.ObserveUpstreamCall("departments", http.MethodGet, false, 5*time.Millisecond)
	m.ObserveJob("roster", "roster", true, time.Millisecond)
	m.SetActiveSessions(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `upstream_requests_total{method="GET",outcome="error",resource="departments"} 1`))
	assert.True(t, strings.Contains(body, "portal_active_sessions 3"))
	assert.True(t, strings.Contains(body, "http_requests_total"))
	assert.True(t, strings.Contains(body, "background_job_duration_seconds"))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/", 200, time.Millisecond)
	m.SetActiveSessions(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
