package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 3.0, Mean([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 2.5, Mean([]float64{2, 3}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 3.0, Quantile(values, 0.5))
	assert.Equal(t, 5.0, Quantile(values, 1))
	assert.InDelta(t, 4.0, Quantile(values, 0.75), 0.001)
}

func TestQuantileClampsRange(t *testing.T) {
	values := []float64{1, 2, 3}
	assert.Equal(t, 1.0, Quantile(values, -0.5))
	assert.Equal(t, 3.0, Quantile(values, 1.5))
}

func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.InDelta(t, 9.1, Percentile(values, 90), 0.001)
	assert.InDelta(t, 5.5, Percentile(values, 50), 0.001)
}
