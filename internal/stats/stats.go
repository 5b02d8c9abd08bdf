// Package stats implements the descriptive, bivariate and distribution
// statistics served by the analytics API. All functions are pure and operate
// on finite numeric slices produced by the query layer.
package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptyInput is returned when a statistic is requested over zero values.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInsufficientSamples is returned when fewer than two paired samples
	// are available for correlation.
	ErrInsufficientSamples = errors.New("stats: need at least 2 paired samples")

	// ErrDegenerateRange is returned when all values are equal, leaving a
	// zero-width histogram domain.
	ErrDegenerateRange = errors.New("stats: degenerate value range")
)

// Descriptive summarizes a single numeric series.
type Descriptive struct {
	Mean               float64 `json:"mean"`
	Median             float64 `json:"median"`
	Std                float64 `json:"std"`
	Count              int     `json:"count"`
	PositivePercentage float64 `json:"positive_percentage"`
}

// Trendline holds a least-squares fit sampled at the domain endpoints.
type Trendline struct {
	Slope     float64    `json:"slope"`
	Intercept float64    `json:"intercept"`
	X         [2]float64 `json:"x"`
	Y         [2]float64 `json:"y"`
}

// Bivariate summarizes the linear relationship between two paired series.
type Bivariate struct {
	Correlation float64   `json:"correlation"`
	RSquared    float64   `json:"r_squared"`
	Trendline   Trendline `json:"trendline"`
}

// Distribution is a normalized histogram: len(Bins) == len(Values)+1 and the
// values integrate to 1 over [Bins[0], Bins[len(Bins)-1]].
type Distribution struct {
	Bins   []float64 `json:"bins"`
	Values []float64 `json:"values"`
}

// Describe computes mean, median, population standard deviation, count and
// the percentage of values strictly greater than zero.
func Describe(xs []float64) (Descriptive, error) {
	n := len(xs)
	if n == 0 {
		return Descriptive{}, ErrEmptyInput
	}

	var sum float64
	positive := 0
	for _, x := range xs {
		sum += x
		if x > 0 {
			positive++
		}
	}
	mean := sum / float64(n)

	var sqDev float64
	for _, x := range xs {
		d := x - mean
		sqDev += d * d
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Descriptive{
		Mean:               mean,
		Median:             median,
		Std:                math.Sqrt(sqDev / float64(n)),
		Count:              n,
		PositivePercentage: float64(positive) / float64(n) * 100,
	}, nil
}

// Correlate computes the Pearson correlation between xs and ys along with the
// coefficient of determination and an ordinary-least-squares trendline
// sampled at min(xs) and max(xs).
func Correlate(xs, ys []float64) (Bivariate, error) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return Bivariate{}, ErrInsufficientSamples
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var covXY, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		covXY += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		// A constant series has no defined correlation.
		return Bivariate{}, ErrInsufficientSamples
	}

	r := covXY / math.Sqrt(varX*varY)
	slope := covXY / varX
	intercept := meanY - slope*meanX

	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}

	return Bivariate{
		Correlation: r,
		RSquared:    r * r,
		Trendline: Trendline{
			Slope:     slope,
			Intercept: intercept,
			X:         [2]float64{minX, maxX},
			Y:         [2]float64{slope*minX + intercept, slope*maxX + intercept},
		},
	}, nil
}

// Histogram bins xs into binCount equal-width bins over [min(xs), max(xs)]
// and returns normalized densities, so that sum(values) * binWidth == 1.
func Histogram(xs []float64, binCount int) (Distribution, error) {
	n := len(xs)
	if n == 0 {
		return Distribution{}, ErrEmptyInput
	}

	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	if minX == maxX {
		return Distribution{}, ErrDegenerateRange
	}

	width := (maxX - minX) / float64(binCount)
	bins := make([]float64, binCount+1)
	for i := range bins {
		bins[i] = minX + float64(i)*width
	}
	bins[binCount] = maxX

	counts := make([]int, binCount)
	for _, x := range xs {
		idx := int((x - minX) / width)
		// The maximum lands exactly on the upper edge of the last bin.
		if idx >= binCount {
			idx = binCount - 1
		}
		counts[idx]++
	}

	values := make([]float64, binCount)
	norm := float64(n) * width
	for i, c := range counts {
		values[i] = float64(c) / norm
	}

	return Distribution{Bins: bins, Values: values}, nil
}
