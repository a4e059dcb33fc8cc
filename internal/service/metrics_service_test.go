package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/pkg/database"
)

var _ database.ScopeObserver = (*MetricsService)(nil)

func TestMetricsServiceSnapshot(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest("GET", "/api/admin/summary", 200, 20*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/admin/summary", 200, 40*time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)

	m.ScopeOpened()
	m.ScopeOpened()
	m.ScopeClosed(10*time.Millisecond, true)
	m.ScopeFailed("invalid_actor")

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 30.0, snap.AverageRequestDurationMs, 0.01)
	assert.Equal(t, uint64(2), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
	assert.InDelta(t, 2.0/3.0, snap.CacheHitRatio, 0.001)
	assert.Equal(t, int64(1), snap.ActiveScopes)
	assert.Equal(t, uint64(1), snap.ScopeFailures)
	assert.InDelta(t, 10.0, snap.AverageScopeDurationMs, 0.01)
	assert.False(t, snap.GeneratedAt.IsZero())
}

func TestMetricsServiceHandlerExposesScopeCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ScopeOpened()
	m.ScopeClosed(time.Millisecond, false)
	m.ScopeFailed("set_config")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "hrms_db_scoped_sessions_active 0"))
	assert.True(t, strings.Contains(body, `hrms_db_scope_failures_total{reason="set_config"} 1`))
	assert.True(t, strings.Contains(body, `hrms_db_scope_duration_seconds_count{outcome="rollback"} 1`))
	assert.Contains(t, body, "go_goroutines")
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService
	m.ScopeOpened()
	m.ScopeClosed(time.Second, true)
	m.ScopeFailed("x")
	m.RecordCacheOperation(true, 0)
	assert.Zero(t, m.Snapshot().RequestsTotal)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
