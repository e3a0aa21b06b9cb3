package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const (
	recordTimeLayout  = "2006-01-02 15:04:05"
	captureTimeLayout = "2006-01-02 15:04:05.00"
)

// formatRecordTime renders the time a log line was emitted, in local time.
func formatRecordTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(time.Local).Format(recordTimeLayout)
}

// formatCaptureTime renders a time attribute as it was read from the file.
// Capture times carry no zone, so the value is not converted; sub-seconds
// are shown only when present because they split burst shots.
func formatCaptureTime(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	if ts.Nanosecond() == 0 {
		return ts.Format(recordTimeLayout)
	}
	return ts.Format(captureTimeLayout)
}

// plainString returns the unquoted text of v, used for the component prefix.
func plainString(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindString {
		return v.String()
	}
	return formatValue(v)
}

func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return quoteIfNeeded(formatCaptureTime(v.Time()))
	case slog.KindAny:
		switch val := v.Any().(type) {
		case error:
			return quoteIfNeeded(val.Error())
		case []string:
			return quoteIfNeeded(strings.Join(val, ","))
		case fmt.Stringer:
			return quoteIfNeeded(val.String())
		default:
			return quoteIfNeeded(fmt.Sprint(val))
		}
	default:
		return quoteIfNeeded(v.String())
	}
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return strconv.Quote(s)
		}
	}
	return s
}
