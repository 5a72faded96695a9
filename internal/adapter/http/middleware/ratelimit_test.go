package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBlocksExcessRequests(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send("1.2.3.4:1234"); code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", code)
	}
	if code := send("1.2.3.4:5678"); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request from same host to be throttled, got %d", code)
	}
	if code := send("5.6.7.8:1234"); code != http.StatusOK {
		t.Fatalf("expected other host to be unaffected, got %d", code)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2025, 12, 5, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("1.2.3.4")
	now = now.Add(2 * time.Hour)
	rl.getLimiter("5.6.7.8")

	rl.CleanupLimiters(time.Hour)

	if _, ok := rl.visitors["1.2.3.4"]; ok {
		t.Fatalf("expected idle limiter to be removed")
	}
	if _, ok := rl.visitors["5.6.7.8"]; !ok {
		t.Fatalf("expected recent limiter to be kept")
	}
}
