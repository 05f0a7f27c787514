package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"price_checker/pkg/contextx"
	"price_checker/pkg/httpx/reply"
	"price_checker/pkg/logx"
	"price_checker/pkg/middlewarex"
)

func captureLogs(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return contextx.WithLogger(context.Background(), log), &buf
}

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var seen contextx.TraceID

	handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		seen = traceID
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/search", http.NoBody)
	req.Header.Set("X-Trace-Id", "caller-trace")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	rq.Equal(contextx.TraceID("caller-trace"), seen)
	rq.Equal("caller-trace", w.Header().Get("X-Trace-Id"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", http.NoBody))

	rq.NotEmpty(seen)
	rq.NotEqual(contextx.TraceID("caller-trace"), seen)
	rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	ctx, logs := captureLogs(t)

	handler := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", http.NoBody).WithContext(ctx))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), `"code":"InternalServerError"`)
	rq.Contains(logs.String(), "panic in handler")
}

func TestRequestResponseLogging(t *testing.T) {
	rq := require.New(t)

	ctx, logs := captureLogs(t)

	chain := middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 4096)(
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 4096)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reply.JSON(r.Context(), w, http.StatusOK, []string{"entry"})
			}),
		),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=tv", http.NoBody).WithContext(ctx)

	w := httptest.NewRecorder()
	chain.ServeHTTP(w, req)

	rq.Equal(http.StatusOK, w.Code)
	rq.Contains(logs.String(), logx.FieldHTTPRequest)
	rq.Contains(logs.String(), "/api/search?q=tv")
	rq.Contains(logs.String(), `"keyword":"tv"`)
	rq.Contains(logs.String(), `"response-status":200`)
	rq.Contains(logs.String(), `[\"entry\"]`)
}

func TestResponseLoggingSkipsHTML(t *testing.T) {
	rq := require.New(t)

	ctx, logs := captureLogs(t)

	handler := middlewarex.ResponseLogging(logx.NewNopSensitiveDataMasker(), 0)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html>secret page</html>"))
		}),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(ctx))

	rq.Equal("<html>secret page</html>", w.Body.String())
	rq.NotContains(logs.String(), "secret page")
}

func TestLogger(t *testing.T) {
	rq := require.New(t)

	ctx, logs := captureLogs(t)

	handler := middlewarex.TraceID(middlewarex.Logger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		contextx.LoggerFromContextOrDefault(r.Context()).Info("inside")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/history", http.NoBody).WithContext(ctx)
	req.Header.Set("X-Trace-Id", "t-77")
	req.RemoteAddr = "192.0.2.10:5555"

	handler.ServeHTTP(httptest.NewRecorder(), req)

	rq.Contains(logs.String(), `"trace-id":"t-77"`)
	rq.Contains(logs.String(), `"ip":"192.0.2.10"`)
	rq.Contains(logs.String(), `"url":"/api/history"`)
}

func TestRecoveryReraisesAbort(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	rq.PanicsWithValue(http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}
