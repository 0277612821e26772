package cosmology

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// speed of light, km/s
	speedOfLight = 299792.458

	// one arcsecond in radians
	radPerArcsec = math.Pi / 648000

	kpcPerMpc = 1000

	// Gauss-Legendre nodes for the comoving-distance integral; the
	// integrand is smooth over the NSA redshift range so a fixed rule
	// converges well past float64 precision
	quadNodes = 64
)

// FlatLambdaCDM is a flat ΛCDM cosmology with Ω_Λ = 1 − Ω_m.
// Distances are in Mpc unless stated otherwise.
type FlatLambdaCDM struct {
	H0     float64 // Hubble constant, km/s/Mpc
	OmegaM float64 // matter density fraction
}

// New returns a flat ΛCDM cosmology
func New(h0, omegaM float64) FlatLambdaCDM {
	return FlatLambdaCDM{H0: h0, OmegaM: omegaM}
}

// HubbleDistance returns c/H0 in Mpc
func (c FlatLambdaCDM) HubbleDistance() float64 {
	return speedOfLight / c.H0
}

// efunc is the dimensionless Hubble parameter E(z)
func (c FlatLambdaCDM) efunc(z float64) float64 {
	zp1 := 1 + z
	return math.Sqrt(c.OmegaM*zp1*zp1*zp1 + (1 - c.OmegaM))
}

// ComovingDistance evaluates D_C(z) = (c/H0) ∫ dz'/E(z').
// Behavior for negative or non-finite redshift is undefined.
func (c FlatLambdaCDM) ComovingDistance(z float64) float64 {
	integral := quad.Fixed(func(zp float64) float64 {
		return 1 / c.efunc(zp)
	}, 0, z, quadNodes, nil, 0)
	return c.HubbleDistance() * integral
}

// AngularDiameterDistance returns D_A(z) = D_C(z)/(1+z) in Mpc
func (c FlatLambdaCDM) AngularDiameterDistance(z float64) float64 {
	return c.ComovingDistance(z) / (1 + z)
}

// KpcPerArcsec returns the physical scale at redshift z under the
// small-angle approximation
func (c FlatLambdaCDM) KpcPerArcsec(z float64) float64 {
	return c.AngularDiameterDistance(z) * kpcPerMpc * radPerArcsec
}

// SizesKpc converts row-aligned angular sizes (arcseconds) and redshifts
// into physical sizes in kpc
func (c FlatLambdaCDM) SizesKpc(arcsec, z []float64) ([]float64, error) {
	if len(arcsec) != len(z) {
		return nil, fmt.Errorf("size and redshift arrays differ in length: %d vs %d", len(arcsec), len(z))
	}
	out := make([]float64, len(arcsec))
	for i := range out {
		out[i] = arcsec[i] * c.KpcPerArcsec(z[i])
	}
	return out, nil
}
