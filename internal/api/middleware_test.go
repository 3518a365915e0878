package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiter(t *testing.T) {
	l := newIPLimiter(4, time.Minute) // burst 2, one token per 15s
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, l.allow("10.0.0.1", now))
	assert.True(t, l.allow("10.0.0.1", now))
	assert.False(t, l.allow("10.0.0.1", now))
	assert.True(t, l.allow("10.0.0.2", now), "limits are per client")

	assert.True(t, l.allow("10.0.0.1", now.Add(20*time.Second)))
}

func TestIPLimiterForgetsIdleClients(t *testing.T) {
	l := newIPLimiter(4, time.Minute)
	now := time.Now()

	l.allow("10.0.0.1", now)
	l.allow("10.0.0.2", now.Add(3*time.Minute))
	assert.Len(t, l.visitors, 2, "allow does not sweep")

	l.sweep(now.Add(3 * time.Minute))
	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
}

func TestIPLimiterDefaults(t *testing.T) {
	l := newIPLimiter(0, 0)
	assert.Equal(t, 1, l.burst)
	assert.Equal(t, 2*time.Minute, l.idle)
}

func TestTimingMiddleware(t *testing.T) {
	h := TimingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `^\d+\.\d{2}ms$`, rec.Header().Get("X-Process-Time"))
}
