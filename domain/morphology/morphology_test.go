package morphology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPartitionsFiniteIndices(t *testing.T) {
	sersicN := []float64{0.5, 2.4999, 2.5, 4.0, 6.0}
	split := Classify(sersicN, DefaultThreshold)

	// disjoint and exhaustive over finite values
	for i := range sersicN {
		assert.NotEqual(t, split.Disk[i], split.Spheroid[i], "row %d must land in exactly one bin", i)
	}
	assert.Equal(t, 2, split.Disk.Count())
	assert.Equal(t, 3, split.Spheroid.Count())
	assert.Zero(t, split.Unclassified)
}

func TestClassifyThresholdBoundary(t *testing.T) {
	split := Classify([]float64{2.5}, 2.5)
	assert.False(t, split.Disk[0])
	assert.True(t, split.Spheroid[0])
}

func TestClassifyCountsNaNAsUnclassified(t *testing.T) {
	split := Classify([]float64{1.0, math.NaN(), 3.0, math.NaN()}, DefaultThreshold)

	assert.Equal(t, 2, split.Unclassified)
	// NaN rows vanish from both bins; the count makes the gap visible
	assert.False(t, split.Disk[1])
	assert.False(t, split.Spheroid[1])
	assert.Equal(t, 1, split.Disk.Count())
	assert.Equal(t, 1, split.Spheroid.Count())
}

func TestClassifyInfinitiesAreClassified(t *testing.T) {
	split := Classify([]float64{math.Inf(1), math.Inf(-1)}, DefaultThreshold)
	assert.True(t, split.Spheroid[0])
	assert.True(t, split.Disk[1])
	assert.Zero(t, split.Unclassified)
}
