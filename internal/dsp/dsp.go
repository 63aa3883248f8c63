// Package dsp holds the small vector statistics the evaluation measures are
// built from. All functions operate on raw sample slices.
package dsp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMS returns the root mean square of x. It is 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

// Variance returns the population variance of x (normalised by n, not n-1),
// matching how signal power is computed here.
func Variance(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	mean := stat.Mean(x, nil)
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return ss / float64(n)
}

// Median returns the median of x, averaging the two middle values for even
// lengths. x is not modified. It is NaN for an empty slice.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	mid := n / 2
	if n%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// Mean returns the arithmetic mean of x. It is NaN for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// PeakToPeak returns max(x) - min(x). It is 0 for an empty slice.
func PeakToPeak(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Max(x) - floats.Min(x)
}
