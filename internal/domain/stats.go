package domain

import "fmt"

// Extremum is a value and its zero-based position in the input.
type Extremum struct {
	Value float64
	Index int
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyInput)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// FindMin returns the minimum and the index of its last occurrence.
// ok is false for an empty input.
func FindMin(values []float64) (ext Extremum, ok bool) {
	return findLast(values, func(v, best float64) bool { return v <= best })
}

// FindMax returns the maximum and the index of its last occurrence.
// ok is false for an empty input.
func FindMax(values []float64) (ext Extremum, ok bool) {
	return findLast(values, func(v, best float64) bool { return v >= best })
}

// findLast scans left to right; replacing on equality leaves the last
// occurrence of the extreme value.
func findLast(values []float64, better func(v, best float64) bool) (Extremum, bool) {
	if len(values) == 0 {
		return Extremum{}, false
	}
	ext := Extremum{Value: values[0], Index: 0}
	for i := 1; i < len(values); i++ {
		if better(values[i], ext.Value) {
			ext = Extremum{Value: values[i], Index: i}
		}
	}
	return ext, true
}

// ParseValues converts numeric strings to floats, failing on the first
// element that is not a number.
func ParseValues(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := ParseNumber(s)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
