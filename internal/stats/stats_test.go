package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeBasics(t *testing.T) {
	d, err := Describe([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, d.Mean, 1e-12)
	assert.InDelta(t, 3.0, d.Median, 1e-12)
	assert.InDelta(t, math.Sqrt2, d.Std, 1e-12)
	assert.Equal(t, 5, d.Count)
	assert.InDelta(t, 100.0, d.PositivePercentage, 1e-12)
}

func TestDescribeEvenCountMedian(t *testing.T) {
	d, err := Describe([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, d.Median, 1e-12)
}

func TestDescribePositivePercentage(t *testing.T) {
	// Zero is not positive.
	d, err := Describe([]float64{-1, 0, 0.5, 2})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, d.PositivePercentage, 1e-12)
}

func TestDescribeConstantSeriesHasZeroStd(t *testing.T) {
	d, err := Describe([]float64{0.7, 0.7, 0.7})
	require.NoError(t, err)
	assert.Zero(t, d.Std)
}

func TestDescribeStdNonNegative(t *testing.T) {
	for _, xs := range [][]float64{
		{1},
		{-5, 5},
		{0.1, -0.2, 0.3, -0.4},
		{1e9, -1e9, 42},
	} {
		d, err := Describe(xs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d.Std, 0.0)
	}
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestCorrelatePerfectLinear(t *testing.T) {
	b, err := Correlate([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, b.Correlation, 1e-12)
	assert.InDelta(t, 1.0, b.RSquared, 1e-12)
	assert.InDelta(t, 2.0, b.Trendline.Slope, 1e-12)
	assert.InDelta(t, 0.0, b.Trendline.Intercept, 1e-12)
	assert.Equal(t, [2]float64{1, 3}, b.Trendline.X)
	assert.InDelta(t, 2.0, b.Trendline.Y[0], 1e-12)
	assert.InDelta(t, 6.0, b.Trendline.Y[1], 1e-12)
}

func TestCorrelateNegative(t *testing.T) {
	b, err := Correlate([]float64{0, 1, 2, 3}, []float64{9, 7, 5, 3})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, b.Correlation, 1e-12)
	assert.InDelta(t, -2.0, b.Trendline.Slope, 1e-12)
	assert.InDelta(t, 9.0, b.Trendline.Intercept, 1e-12)
}

func TestCorrelateBounds(t *testing.T) {
	xs := []float64{0.3, 1.7, 2.2, 4.9, 5.1}
	ys := []float64{2.1, 0.4, 3.3, 1.8, 4.0}

	b, err := Correlate(xs, ys)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, b.Correlation, -1.0)
	assert.LessOrEqual(t, b.Correlation, 1.0)
	assert.InDelta(t, b.Correlation*b.Correlation, b.RSquared, 1e-12)
}

func TestCorrelateInsufficientSamples(t *testing.T) {
	_, err := Correlate([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, ErrInsufficientSamples)

	_, err = Correlate([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInsufficientSamples)

	// Constant series: correlation undefined.
	_, err = Correlate([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInsufficientSamples)
}

func TestHistogramDensityIntegratesToOne(t *testing.T) {
	xs := []float64{-0.9, -0.5, -0.1, 0.0, 0.2, 0.2, 0.4, 0.8, 0.95, 1.0}

	d, err := Histogram(xs, 10)
	require.NoError(t, err)
	require.Len(t, d.Bins, 11)
	require.Len(t, d.Values, 10)

	width := d.Bins[1] - d.Bins[0]
	var integral float64
	for _, v := range d.Values {
		integral += v * width
	}
	assert.InDelta(t, 1.0, integral, 1e-9)
}

func TestHistogramEdgesSpanDomain(t *testing.T) {
	xs := []float64{2, 4, 6, 8}
	d, err := Histogram(xs, 4)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, d.Bins[0], 1e-12)
	assert.InDelta(t, 8.0, d.Bins[len(d.Bins)-1], 1e-12)

	// The maximum value counts into the last bin, not past it.
	var total float64
	for _, v := range d.Values {
		total += v
	}
	assert.Greater(t, d.Values[len(d.Values)-1], 0.0)
	assert.InDelta(t, 1.0, total*(d.Bins[1]-d.Bins[0]), 1e-9)
}

func TestHistogramFailures(t *testing.T) {
	_, err := Histogram(nil, 10)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Histogram([]float64{0.5, 0.5, 0.5}, 10)
	assert.ErrorIs(t, err, ErrDegenerateRange)
}
