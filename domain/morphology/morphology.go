package morphology

import (
	"math"

	"masssize/domain/catalog"
)

// DefaultThreshold is the Sérsic index separating disk-like from
// spheroid-like profiles
const DefaultThreshold = 2.5

// Split is a binary partition of a sample by Sérsic index. Disk and
// Spheroid are mutually exclusive and together cover every finite index;
// rows with a non-finite index land in neither bin and are counted as
// Unclassified so the gap is visible instead of silent.
type Split struct {
	Disk         catalog.Mask
	Spheroid     catalog.Mask
	Unclassified int
}

// Classify partitions a Sérsic index array at the given threshold:
// strictly-less is disk-like, greater-or-equal is spheroid-like.
func Classify(sersicN []float64, threshold float64) Split {
	split := Split{
		Disk:     make(catalog.Mask, len(sersicN)),
		Spheroid: make(catalog.Mask, len(sersicN)),
	}
	for i, n := range sersicN {
		split.Disk[i] = n < threshold
		split.Spheroid[i] = n >= threshold
		if math.IsNaN(n) {
			split.Unclassified++
		}
	}
	return split
}
