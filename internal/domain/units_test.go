package domain

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		name     string
		f        float64
		expected float64
	}{
		{"freezing", 32, 0.0},
		{"boiling", 212, 100.0},
		{"body temperature", 98.6, 37.0},
		{"below freezing", 0, -17.8},
		{"minus forty", -40, -40.0},
		{"fraction rounds up", 40, 4.4},
		{"fraction rounds to nearest", 80, 26.7},
		{"sub zero fraction", 31, -0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FahrenheitToCelsius(tt.f))
		})
	}
}

func TestParseFahrenheitToCelsius(t *testing.T) {
	t.Run("numeric string", func(t *testing.T) {
		c, err := ParseFahrenheitToCelsius("98.6")
		require.NoError(t, err)
		assert.Equal(t, 37.0, c)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		c, err := ParseFahrenheitToCelsius(" 212 ")
		require.NoError(t, err)
		assert.Equal(t, 100.0, c)
	})

	t.Run("non-numeric string", func(t *testing.T) {
		_, err := ParseFahrenheitToCelsius("warm")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorIs(t, err, strconv.ErrSyntax)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "warm", pe.Value)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseFahrenheitToCelsius("")
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestRound1(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"already rounded", 5.3, 5.3},
		{"round down", 2.24, 2.2},
		{"round up", 2.26, 2.3},
		{"exact tie to even below", 0.25, 0.2},
		{"exact tie to even above", 0.75, 0.8},
		{"binary value below tie", 0.35, 0.3},
		{"negative", -17.7777, -17.8},
		{"integer", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round1(tt.in))
		})
	}

	t.Run("NaN passes through", func(t *testing.T) {
		assert.True(t, math.IsNaN(Round1(math.NaN())))
	})
}
