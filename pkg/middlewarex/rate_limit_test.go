package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"price_checker/pkg/middlewarex"
)

func TestRateLimit(t *testing.T) {
	rq := require.New(t)

	// Zero refill rate: only the burst is ever available.
	limiter := middlewarex.NewRateLimiter(0, 2)

	handler := middlewarex.RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/search?q=tv", http.NoBody)
		req.RemoteAddr = remoteAddr

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		return w.Code
	}

	rq.Equal(http.StatusOK, do("10.0.0.1:1000"))
	rq.Equal(http.StatusOK, do("10.0.0.1:1001"))
	rq.Equal(http.StatusTooManyRequests, do("10.0.0.1:1002"))

	// Another client has its own bucket.
	rq.Equal(http.StatusOK, do("10.0.0.2:1000"))
}

func TestRateLimiterCleanup(t *testing.T) {
	rq := require.New(t)

	limiter := middlewarex.NewRateLimiter(0, 1)

	rq.True(limiter.Allow("10.0.0.1"))
	rq.False(limiter.Allow("10.0.0.1"))

	// Fresh entries survive cleanup, so the bucket stays exhausted.
	limiter.Cleanup()
	rq.False(limiter.Allow("10.0.0.1"))
}
