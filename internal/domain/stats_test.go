package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		m, err := Mean([]float64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 2.0, m)
	})

	t.Run("single value", func(t *testing.T) {
		m, err := Mean([]float64{-4.5})
		require.NoError(t, err)
		assert.Equal(t, -4.5, m)
	})

	t.Run("fractional mean", func(t *testing.T) {
		m, err := Mean([]float64{49, 57, 56, 55, 53})
		require.NoError(t, err)
		assert.InDelta(t, 54.0, m, 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Mean(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestFindMin(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Extremum
	}{
		{"last occurrence wins", []float64{1, 5, 3, 1, 5}, Extremum{Value: 1, Index: 3}},
		{"single", []float64{7}, Extremum{Value: 7, Index: 0}},
		{"first position", []float64{-2, 0, 4}, Extremum{Value: -2, Index: 0}},
		{"all equal", []float64{4, 4, 4}, Extremum{Value: 4, Index: 2}},
		{"fractions", []float64{10.4, 14.5, 12.9, 8.3, 11.1}, Extremum{Value: 8.3, Index: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMin(tt.values)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindMax(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Extremum
	}{
		{"last occurrence wins", []float64{1, 5, 3, 5, 2}, Extremum{Value: 5, Index: 3}},
		{"single", []float64{7}, Extremum{Value: 7, Index: 0}},
		{"first position only", []float64{9, 0, 4}, Extremum{Value: 9, Index: 0}},
		{"all equal", []float64{4, 4, 4}, Extremum{Value: 4, Index: 2}},
		{"negatives", []float64{-3, -1, -2}, Extremum{Value: -1, Index: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMax(tt.values)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindExtrema_Empty(t *testing.T) {
	_, ok := FindMin(nil)
	assert.False(t, ok)

	_, ok = FindMax([]float64{})
	assert.False(t, ok)
}

func TestParseValues(t *testing.T) {
	t.Run("numeric strings", func(t *testing.T) {
		values, err := ParseValues([]string{"1", " 5.5", "-3"})
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 5.5, -3}, values)

		ext, ok := FindMin(values)
		require.True(t, ok)
		assert.Equal(t, Extremum{Value: -3, Index: 2}, ext)
	})

	t.Run("non-numeric element", func(t *testing.T) {
		_, err := ParseValues([]string{"1", "two", "3"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
		assert.Contains(t, err.Error(), "value 1")
	})

	t.Run("empty input", func(t *testing.T) {
		values, err := ParseValues(nil)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Row: 3, Field: "min", Value: "abc"}
	assert.Equal(t, `parse row 3 min "abc"`, err.Error())
	assert.ErrorIs(t, err, ErrParse)
}
