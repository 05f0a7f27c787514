package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// MaxTraceIDLen bounds trace ids accepted from callers.
const MaxTraceIDLen = 64

// TraceID correlates the logs, the error reply and the history record of one search.
type TraceID string

type contextKeyTraceID struct{}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID accepts a caller supplied id made of printable ASCII without spaces.
func ParseTraceID(s string) (TraceID, bool) {
	if s == "" || len(s) > MaxTraceIDLen {
		return "", false
	}

	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return "", false
		}
	}

	return TraceID(s), true
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
