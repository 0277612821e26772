package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityMaskMatchesComponentConditions(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	flag := []float64{1, 0, 1, 1, 1, 1, 1, 2}
	mass := []float64{1e9, 1e9, nan, 1e9, -1, 1e9, inf, 1e9}
	size := []float64{2, 2, 2, nan, 2, -3, 2, 2}

	mask := QualityMask(flag, mass, size, 1)

	for i := range mask {
		want := flag[i] == 1 &&
			!math.IsNaN(mass[i]) && !math.IsInf(mass[i], 0) &&
			!math.IsNaN(size[i]) && !math.IsInf(size[i], 0) &&
			mass[i] > 0 && size[i] > 0
		assert.Equal(t, want, mask[i], "row %d", i)
	}
	assert.Equal(t, 1, mask.Count())
	assert.True(t, mask[0])
}

func TestQualityMaskNaNResolvesFalse(t *testing.T) {
	nan := math.NaN()
	mask := QualityMask([]float64{1}, []float64{nan}, []float64{1}, 1)
	assert.False(t, mask[0])
}

func TestGreaterThanExcludesNaN(t *testing.T) {
	mask := GreaterThan([]float64{0.4, 0.5, 0.6, math.NaN()}, 0.5)
	assert.Equal(t, Mask{false, false, true, false}, mask)
}

func TestMaskApply(t *testing.T) {
	mask := Mask{true, false, true}
	assert.Equal(t, []float64{1, 3}, mask.Apply([]float64{1, 2, 3}))
}

func TestMaskAnd(t *testing.T) {
	a := Mask{true, true, false}
	b := Mask{true, false, true}
	assert.Equal(t, Mask{true, false, false}, a.And(b))
}
