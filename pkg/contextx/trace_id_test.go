package contextx_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"price_checker/pkg/contextx"
)

func TestTraceIDFromContext(t *testing.T) {
	rq := require.New(t)

	traceID, err := contextx.TraceIDFromContext(context.Background())
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	ctx := contextx.WithTraceID(context.Background(), "search-1")

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(contextx.TraceID("search-1"), traceID)
}

func TestParseTraceID(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "xid", input: "cs1v2m8ip0s5k7o2ckg0", ok: true},
		{name: "uuid", input: "0b9c6e0e-2f5e-4d4e-9a57-5b2d1c0e7f11", ok: true},
		{name: "empty", input: ""},
		{name: "too long", input: strings.Repeat("a", contextx.MaxTraceIDLen+1)},
		{name: "longest accepted", input: strings.Repeat("a", contextx.MaxTraceIDLen), ok: true},
		{name: "space", input: "trace id"},
		{name: "newline", input: "trace\nid"},
		{name: "non ascii", input: "トレース"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			traceID, ok := contextx.ParseTraceID(tc.input)
			rq.Equal(tc.ok, ok)

			if tc.ok {
				rq.Equal(tc.input, traceID.String())
			} else {
				rq.Empty(traceID)
			}
		})
	}
}

func TestNewTraceID(t *testing.T) {
	rq := require.New(t)

	first, second := contextx.NewTraceID(), contextx.NewTraceID()

	rq.Len(first.String(), 20)
	rq.NotEqual(first, second)

	_, ok := contextx.ParseTraceID(first.String())
	rq.True(ok)
}
