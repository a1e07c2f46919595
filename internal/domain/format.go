package domain

import (
	"strconv"
	"strings"
	"time"
)

// DegreeCelsius is appended to every rendered temperature.
const DegreeCelsius = "°C"

const longDateLayout = "Monday 02 January 2006"

// isoLayouts are tried in order; the first is the plain calendar date.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDate renders an ISO-8601 date as e.g. "Tuesday 06 July 2021".
// A full RFC 3339 timestamp is accepted too.
func FormatDate(iso string) (string, error) {
	s := strings.TrimSpace(iso)
	var firstErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format(longDateLayout), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", &ParseError{Field: "date", Value: iso, Err: firstErr}
}

// FormatTemperature renders v followed by DegreeCelsius, e.g. "5.3°C".
// Whole numbers keep one decimal ("0.0°C"). No rounding happens here.
func FormatTemperature(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s + DegreeCelsius
}
