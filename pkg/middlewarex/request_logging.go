package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"price_checker/pkg/logx"
)

// RequestLogging dumps the incoming request with credentials masked. Bodies are
// only dumped for JSON requests, the API itself is GET only. A search keyword is
// also logged as its own field.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, isJSON(r.Header))
			if err != nil {
				logger(ctx).Error("httputil.DumpRequest", logx.Error(err))
			}

			attrs := []any{
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(truncate(dump, logFieldMaxLen)))),
				slog.String(logx.FieldUserAgent, r.UserAgent()),
			}

			if keyword := r.URL.Query().Get("q"); keyword != "" {
				attrs = append(attrs, slog.String(logx.FieldKeyword, keyword))
			}

			logger(ctx).Info(logx.FieldHTTPRequest, attrs...)

			next.ServeHTTP(w, r)
		})
	}
}

// truncate cuts dump to maxLen bytes. Zero or less keeps it whole.
func truncate(dump []byte, maxLen int) []byte {
	if maxLen > 0 && len(dump) > maxLen {
		return dump[:maxLen]
	}

	return dump
}
