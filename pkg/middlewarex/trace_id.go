package middlewarex

import (
	"net/http"

	"price_checker/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID takes the caller's X-Trace-Id or generates one, and echoes it back so a
// client can quote it as the support id.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), traceID)))
	})
}
