package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NotificationCollectors(t *testing.T) {
	m := NewMetrics()

	m.RecordSent("SCHEDULE_CREATE")
	m.RecordSent("SCHEDULE_CREATE")
	m.RecordFailed("SCHEDULE_UPDATE", ReasonService)
	m.RecordSkipped("SCHEDULE_DELETE")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.notificationsSentTotal.WithLabelValues("SCHEDULE_CREATE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsFailedTotal.WithLabelValues("SCHEDULE_UPDATE", ReasonService)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsSkippedTotal.WithLabelValues("SCHEDULE_DELETE")))
}

func TestMetrics_HTTPCollectors(t *testing.T) {
	m := NewMetrics()

	m.ObserveHTTPRequest("GET", "/health", "200", 3*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordSent("SCHEDULE_CREATE")
		m.RecordFailed("SCHEDULE_CREATE", ReasonUnknown)
		m.RecordSkipped("SCHEDULE_CREATE")
		m.ObserveHTTPRequest("GET", "/health", "200", time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.RecordSent("SCHEDULE_CREATE")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "schedule_notify_notifications_sent_total")
}
