package monitoring_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/monitoring"
)

func TestMetrics_Capture(t *testing.T) {
	m := monitoring.NewMetrics()

	m.CaptureCompleted(entity.SessionKindManual, 12, 30*time.Millisecond)
	m.CaptureCompleted(entity.SessionKindScheduled, 3, 10*time.Millisecond)
	m.CaptureFailed(entity.SessionKindScheduled, "host_enumeration")
	m.SessionsEvicted(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CapturesTotal.WithLabelValues("manual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CapturesTotal.WithLabelValues("scheduled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CaptureFailures.WithLabelValues("scheduled", "host_enumeration")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EvictedTotal))
}

func TestMetrics_Restore(t *testing.T) {
	m := monitoring.NewMetrics()

	result := entity.RestoreResult{RestoredWindows: 2, RestoredTabs: 9, RestoredGroups: 1}
	m.RestoreCompleted(result, time.Second)

	result.Warn(entity.StageCreateWindow, 1, errors.New("refused"))
	m.RestoreCompleted(result, time.Second)
	m.RestoreRejected("busy")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RestoresTotal.WithLabelValues("complete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RestoresTotal.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RestoresTotal.WithLabelValues("busy")))
	assert.Equal(t, 18.0, testutil.ToFloat64(m.RestoredItems.WithLabelValues("tab")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RestoreWarnings.WithLabelValues("create_window")))
}

func TestMetrics_Handler(t *testing.T) {
	m := monitoring.NewMetrics()
	m.TemplateCount(3)
	m.RecordHTTPRequest(http.MethodGet, "/api/v1/sessions", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "tabsnap_templates 3")
	assert.Contains(t, string(body), `tabsnap_http_requests_total{method="GET",path="/api/v1/sessions",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := monitoring.NewMetrics()
	b := monitoring.NewMetrics()
	a.TemplateCount(5)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Templates))
}
