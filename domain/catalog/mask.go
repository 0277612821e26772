package catalog

import "math"

// Mask is a boolean selection aligned to a catalog's row order
type Mask []bool

// Count returns the number of selected rows
func (m Mask) Count() int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}
	return n
}

// Apply selects the masked entries of a row-aligned column
func (m Mask) Apply(values []float64) []float64 {
	out := make([]float64, 0, m.Count())
	for i, ok := range m {
		if ok {
			out = append(out, values[i])
		}
	}
	return out
}

// And combines two masks element-wise
func (m Mask) And(other Mask) Mask {
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] && other[i]
	}
	return out
}

// QualityMask builds the selection of rows with a valid profile fit:
// flag equals flagValue, mass and size are finite, mass and size are
// positive. All five tests are independent element-wise conditions;
// NaN comparisons resolve to false under IEEE semantics.
func QualityMask(flag, mass, size []float64, flagValue float64) Mask {
	mask := make(Mask, len(flag))
	for i := range mask {
		mask[i] = flag[i] == flagValue &&
			!math.IsNaN(mass[i]) && !math.IsInf(mass[i], 0) &&
			!math.IsNaN(size[i]) && !math.IsInf(size[i], 0) &&
			mass[i] > 0 &&
			size[i] > 0
	}
	return mask
}

// GreaterThan selects rows whose value strictly exceeds min. NaN entries
// are never selected.
func GreaterThan(values []float64, min float64) Mask {
	mask := make(Mask, len(values))
	for i, v := range values {
		mask[i] = v > min
	}
	return mask
}
