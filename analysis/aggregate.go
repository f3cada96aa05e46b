// Package analysis: morphology-level aggregators.
//
// Aggregators reduce the per-arbor value lists of a Result to one scalar.
// The IgnoreZero variants drop exact-zero entries first — used when zero
// denotes "arbor absent" rather than a true minimum.

package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Total sums all values; 0 for an empty input.
func Total(values []float64) float64 {
	return floats.Sum(values)
}

// Minimum returns the smallest value; 0 for an empty input.
func Minimum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return floats.Min(values)
}

// Maximum returns the largest value; 0 for an empty input.
func Maximum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return floats.Max(values)
}

// Average returns the arithmetic mean; 0 for an empty input.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return stat.Mean(values, nil)
}

// MinimumIgnoreZero is Minimum over the non-zero values.
func MinimumIgnoreZero(values []float64) float64 {
	return Minimum(dropZero(values))
}

// AverageIgnoreZero is Average over the non-zero values.
func AverageIgnoreZero(values []float64) float64 {
	return Average(dropZero(values))
}

// dropZero filters exact-zero entries, preserving order.
func dropZero(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v != 0 {
			out = append(out, v)
		}
	}

	return out
}
