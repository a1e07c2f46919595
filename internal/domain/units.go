package domain

import (
	"strconv"
	"strings"
)

// FahrenheitToCelsius converts f to Celsius rounded to one decimal place.
func FahrenheitToCelsius(f float64) float64 {
	return Round1((f - 32) * 5 / 9)
}

// ParseFahrenheitToCelsius parses a numeric string and converts it like
// FahrenheitToCelsius. Surrounding whitespace is ignored.
func ParseFahrenheitToCelsius(s string) (float64, error) {
	f, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	return FahrenheitToCelsius(f), nil
}

// ParseNumber parses a decimal string into a float64.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Value: s, Err: err}
	}
	return v, nil
}

// Round1 rounds v to one decimal place. The decimal conversion is exact and
// halfway cases round to even.
func Round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
