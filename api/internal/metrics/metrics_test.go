package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	m := New()
	m.ObserveOperation("fibonacci", OutcomeSuccess)
	m.ObserveOperation("fibonacci", OutcomeSuccess)
	m.ObserveOperation("lcm", OutcomeFailure)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("fibonacci", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("lcm", OutcomeFailure)))
}

func TestObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP("/bfhl", http.MethodPost, http.StatusBadRequest, 3*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/bfhl", "POST", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestHandlerExposesSeries(t *testing.T) {
	m := New()
	m.ObserveOperation("hcf", OutcomeSuccess)
	m.ObserveAI(OutcomeSuccess, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bfhl_operations_total{operation="hcf",outcome="success"} 1`)
	assert.Contains(t, string(body), "bfhl_ai_request_duration_seconds_count")
	assert.Contains(t, string(body), "go_goroutines")
}
