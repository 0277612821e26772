package relation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrDegenerate reports a least-squares fit attempted on fewer than two
// points, which leaves the normal equations underdetermined
var ErrDegenerate = errors.New("relation: fewer than two points")

// Fit is an affine mass-size relation logRe ≈ Alpha·(logM − Pivot) + Beta.
// The shared pivot keeps intercepts comparable across subsamples.
type Fit struct {
	Alpha float64 // slope
	Beta  float64 // intercept at logM = Pivot
	Pivot float64
	N     int // points fitted
}

// Predict evaluates the fitted relation at a log-mass
func (f Fit) Predict(logM float64) float64 {
	return f.Alpha*(logM-f.Pivot) + f.Beta
}

// FitOLS computes the ordinary-least-squares fit of logRe against
// logM − pivot. Identical inputs yield identical parameters.
func FitOLS(logM, logRe []float64, pivot float64) (Fit, error) {
	if len(logM) != len(logRe) {
		return Fit{}, fmt.Errorf("relation: mismatched arrays: %d vs %d points", len(logM), len(logRe))
	}
	if len(logM) < 2 {
		return Fit{}, fmt.Errorf("%w (got %d)", ErrDegenerate, len(logM))
	}

	x := make([]float64, len(logM))
	for i, m := range logM {
		x[i] = m - pivot
	}

	intercept, slope := stat.LinearRegression(x, logRe, nil, false)
	return Fit{Alpha: slope, Beta: intercept, Pivot: pivot, N: len(x)}, nil
}

// Scatter is the population standard deviation of the fit residuals in
// dex; exactly 0 when every point lies on the fitted line
func Scatter(logM, logRe []float64, fit Fit) float64 {
	if len(logM) == 0 {
		return math.NaN()
	}
	residuals := make([]float64, len(logM))
	for i := range residuals {
		residuals[i] = logRe[i] - fit.Predict(logM[i])
	}
	mean := stat.Mean(residuals, nil)
	var ss float64
	for _, r := range residuals {
		d := r - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(residuals)))
}
