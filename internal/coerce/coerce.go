// Package coerce turns raw values from external spreadsheets into the
// domain's canonical primitive types. Every function is total: a value
// that cannot be parsed gets the field's default and a logged warning,
// never an error, so one dirty cell cannot abort an import batch.
package coerce

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Formats is the ordered list of date layouts tried for CSV input.
// First match wins.
var Formats = []string{
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
}

// ExcelFormats extends Formats with spellings seen in Excel exports.
var ExcelFormats = append(append([]string{}, Formats...),
	"02/01/2006",
	"2006.01.02",
)

// Text returns the trimmed string form of value, or "" for nil.
func Text(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Date normalizes value to a YYYY-MM-DD string using the CSV format list.
func Date(value any) string {
	return DateIn(value, Formats)
}

// DateIn normalizes value to a YYYY-MM-DD string, trying each layout in
// order. Missing or unparseable values fall back to today's date.
func DateIn(value any, formats []string) string {
	if t, ok := value.(time.Time); ok {
		return t.Format(dateLayout)
	}

	s := Text(value)
	if s == "" {
		return time.Now().Format(dateLayout)
	}

	for _, layout := range formats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout)
		}
	}

	slog.Warn("could not parse date, using today", slog.String("value", s))
	return time.Now().Format(dateLayout)
}

// Int parses value as an integer, defaulting to 1 (the "at least one
// item" quantity default). Parsing goes through a float intermediate so
// "3.0" succeeds.
func Int(value any) int {
	switch v := value.(type) {
	case nil:
		return 1
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}

	s := Text(value)
	if s == "" {
		return 1
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Warn("could not parse integer, using 1", slog.String("value", s))
		return 1
	}
	return int(f)
}

// Float parses value as a number, defaulting to 0.0.
func Float(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0.0
	case float64:
		return v
	case int:
		return float64(v)
	}

	s := Text(value)
	if s == "" {
		return 0.0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Warn("could not parse number, using 0.0", slog.String("value", s))
		return 0.0
	}
	return f
}
