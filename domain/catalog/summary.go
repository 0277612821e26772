package catalog

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary holds the NaN-ignoring sanity-check statistics of a column
type Summary struct {
	Min    float64
	Max    float64
	Median float64
	Valid  int // finite entries that contributed
}

// Summarize computes min, max and median over the finite entries of a
// column, mirroring the pre-cut sanity checks of the analysis. A column
// with no finite entries yields all-NaN statistics.
func Summarize(values []float64) Summary {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Summary{Min: math.NaN(), Max: math.NaN(), Median: math.NaN()}
	}

	min, err := stats.Min(finite)
	if err != nil {
		return Summary{Min: math.NaN(), Max: math.NaN(), Median: math.NaN()}
	}
	max, err := stats.Max(finite)
	if err != nil {
		return Summary{Min: math.NaN(), Max: math.NaN(), Median: math.NaN()}
	}
	median, err := stats.Median(finite)
	if err != nil {
		return Summary{Min: math.NaN(), Max: math.NaN(), Median: math.NaN()}
	}

	return Summary{Min: min, Max: max, Median: median, Valid: len(finite)}
}
