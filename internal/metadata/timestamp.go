package metadata

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the exiftool date layout.
const TimeLayout = "2006:01:02 15:04:05"

// ReportLayout is the layout used in time files and reports.
const ReportLayout = "2006-01-02 15:04:05"

// ParseCaptureTime parses an exif timestamp ("YYYY:MM:DD HH:MM:SS", optionally
// followed by fractional seconds and a zone) and applies subsec as a decimal
// fraction of a second. Zones are dropped: capture times are wall-clock times
// of the camera.
func ParseCaptureTime(value, subsec string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if len(raw) < len(TimeLayout) {
		return time.Time{}, fmt.Errorf("timestamp %q too short", value)
	}
	base := raw[:len(TimeLayout)]
	rest := raw[len(TimeLayout):]

	layout := TimeLayout
	if strings.Count(base[:10], "-") == 2 {
		layout = ReportLayout
	}
	t, err := time.Parse(layout, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}

	fraction := strings.TrimSpace(subsec)
	if fraction == "" && strings.HasPrefix(rest, ".") {
		fraction = rest[1:]
	}
	if d, ok := parseFraction(fraction); ok {
		t = t.Add(d)
	}
	return t, nil
}

// ParseReportTime parses a timestamp in either the report or exif layout.
func ParseReportTime(value string) (time.Time, error) {
	return ParseCaptureTime(value, "")
}

// parseFraction reads the leading digits of s as a decimal fraction.
func parseFraction(s string) (time.Duration, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	digits := s[:end]
	if len(digits) > 9 {
		digits = digits[:9]
	}
	var nanos int64
	for _, ch := range digits {
		nanos = nanos*10 + int64(ch-'0')
	}
	for i := len(digits); i < 9; i++ {
		nanos *= 10
	}
	return time.Duration(nanos), true
}
