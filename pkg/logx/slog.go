package logx

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// Elapsed reports the time since start under FieldDurationMs.
func Elapsed(start time.Time) slog.Attr {
	return slog.Int64(FieldDurationMs, time.Since(start).Milliseconds())
}
