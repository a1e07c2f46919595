// Package summary renders human-readable weather summaries from a table.
package summary

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/weather-summary/internal/domain"
)

// Kind names a summary style.
type Kind string

const (
	KindOverview Kind = "overview"
	KindDaily    Kind = "daily"
)

// Render dispatches to Overview or Daily.
func Render(kind Kind, table domain.WeatherTable) (string, error) {
	switch kind {
	case KindOverview:
		return Overview(table)
	case KindDaily:
		return Daily(table)
	default:
		return "", fmt.Errorf("unknown summary kind %q", kind)
	}
}

// Overview reports the lowest and highest Celsius readings with their dates
// and the average low and high across the table.
//
// Extremes are tracked with strict comparisons, so among equal readings the
// earliest record is reported. This differs from domain.FindMin/FindMax,
// which report the last occurrence.
func Overview(table domain.WeatherTable) (string, error) {
	lows := make([]float64, 0, len(table))
	highs := make([]float64, 0, len(table))
	lowest, highest := -1, -1

	for i, rec := range table {
		minC := domain.FahrenheitToCelsius(rec.MinF)
		maxC := domain.FahrenheitToCelsius(rec.MaxF)

		if lowest < 0 || minC < lows[lowest] {
			lowest = i
		}
		if highest < 0 || maxC > highs[highest] {
			highest = i
		}
		lows = append(lows, minC)
		highs = append(highs, maxC)
	}

	avgLow, err := domain.Mean(lows)
	if err != nil {
		return "", fmt.Errorf("overview: %w", err)
	}
	avgHigh, err := domain.Mean(highs)
	if err != nil {
		return "", fmt.Errorf("overview: %w", err)
	}

	lowDate, err := domain.FormatDate(table[lowest].Date)
	if err != nil {
		return "", fmt.Errorf("overview: record %d: %w", lowest, err)
	}
	highDate, err := domain.FormatDate(table[highest].Date)
	if err != nil {
		return "", fmt.Errorf("overview: record %d: %w", highest, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", len(table))
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n",
		domain.FormatTemperature(domain.Round1(lows[lowest])), lowDate)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n",
		domain.FormatTemperature(domain.Round1(highs[highest])), highDate)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", domain.FormatTemperature(domain.Round1(avgLow)))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", domain.FormatTemperature(domain.Round1(avgHigh)))
	return b.String(), nil
}

// Daily renders one block per record, in table order. An empty table yields
// an empty string.
func Daily(table domain.WeatherTable) (string, error) {
	var b strings.Builder
	for i, rec := range table {
		date, err := domain.FormatDate(rec.Date)
		if err != nil {
			return "", fmt.Errorf("daily: record %d: %w", i, err)
		}
		fmt.Fprintf(&b, "---- %s ----\n", date)
		fmt.Fprintf(&b, "  Minimum Temperature: %s\n", domain.FormatTemperature(domain.FahrenheitToCelsius(rec.MinF)))
		fmt.Fprintf(&b, "  Maximum Temperature: %s\n\n", domain.FormatTemperature(domain.FahrenheitToCelsius(rec.MaxF)))
	}
	return b.String(), nil
}
