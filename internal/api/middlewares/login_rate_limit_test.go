package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/5w1tchy/bookshelf/internal/api/middlewares"
)

func TestLoginRateLimit(t *testing.T) {
	limit := mw.LoginRateLimit(mw.LoginLimit{
		Counter:     mw.NewMemoryAttempts(time.Minute),
		MaxAttempts: 2,
		Window:      time.Minute,
	})
	h := limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, post("10.0.0.1").Code)
	third := post("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "60", third.Header().Get("Retry-After"))

	// other clients keep their own budget
	assert.Equal(t, http.StatusOK, post("10.0.0.2").Code)
}

func TestLoginRateLimitClientKey(t *testing.T) {
	post := func(h http.Handler, remote, xff, realIP string) int {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = remote
		if xff != "" {
			req.Header.Set("X-Forwarded-For", xff)
		}
		if realIP != "" {
			req.Header.Set("X-Real-IP", realIP)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	build := func(trust bool) http.Handler {
		return mw.LoginRateLimit(mw.LoginLimit{
			Counter:     mw.NewMemoryAttempts(time.Minute),
			MaxAttempts: 1,
			Window:      time.Minute,
			TrustProxy:  trust,
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	}

	t.Run("forwarded headers ignored by default", func(t *testing.T) {
		h := build(false)
		assert.Equal(t, http.StatusOK, post(h, "10.0.0.1:1", "1.1.1.1", ""))
		assert.Equal(t, http.StatusTooManyRequests, post(h, "10.0.0.1:2", "2.2.2.2", "3.3.3.3"))
	})

	t.Run("trusted proxy keys by appended address", func(t *testing.T) {
		h := build(true)
		assert.Equal(t, http.StatusOK, post(h, "10.0.0.9:1", "1.1.1.1, 203.0.113.7", ""))
		// a forged leading entry does not buy a fresh budget
		assert.Equal(t, http.StatusTooManyRequests, post(h, "10.0.0.9:2", "9.9.9.9, 203.0.113.7", ""))
		assert.Equal(t, http.StatusOK, post(h, "10.0.0.9:3", "198.51.100.4", ""))
	})

	t.Run("trusted proxy falls back on bad headers", func(t *testing.T) {
		h := build(true)
		assert.Equal(t, http.StatusOK, post(h, "10.0.0.5:1", "garbage", "also-garbage"))
		assert.Equal(t, http.StatusTooManyRequests, post(h, "10.0.0.5:2", "", ""))
		assert.Equal(t, http.StatusOK, post(h, "10.0.0.5:3", "", "192.0.2.8"))
	})
}

func TestLoginRateLimit_NoCounterPassesThrough(t *testing.T) {
	h := mw.LoginRateLimit(mw.LoginLimit{MaxAttempts: 1})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("POST", "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMemoryAttemptsWindow(t *testing.T) {
	a := mw.NewMemoryAttempts(time.Minute)

	n, err := a.Incr(t.Context(), "k", 50*time.Millisecond)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = a.Incr(t.Context(), "k", 50*time.Millisecond)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	time.Sleep(80 * time.Millisecond)
	n, err = a.Incr(t.Context(), "k", 50*time.Millisecond)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "counter resets after the window")
}
