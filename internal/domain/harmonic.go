// Package domain implements the spherical harmonic evaluation core:
// the associated Legendre recurrence, the real-valued harmonic itself,
// the field colormap, and the unit-sphere mesh the field is sampled on.
package domain

import "math"

// MaxDegree is the highest degree the evaluator accepts. Beyond roughly 20
// the factorials in the normalization constant start losing float64
// precision, so callers are validated against this bound.
const MaxDegree = 20

// LegendreP computes the associated Legendre polynomial P_l^m(x) using the
// standard numerically-stable upward recurrence:
//
//	P_m^m(x)     = Π_{i=1..m} -(2i-1)·sqrt(1-x²)
//	P_{m+1}^m(x) = x·(2m+1)·P_m^m(x)
//	P_ll^m(x)    = (x·(2ll-1)·P_{ll-1}^m - (ll+m-1)·P_{ll-2}^m) / (ll-m)
//
// Out-of-range orders (m < 0 or m > l) contribute nothing and return 0;
// the evaluator is expected to be called with validated parameters.
func LegendreP(l, m int, x float64) float64 {
	if m < 0 || m > l {
		return 0
	}
	if l == 0 {
		return 1
	}

	// Seed P_m^m as an iterative product, accumulating one sqrt(1-x²)
	// factor per step instead of raising (1-x²) to m/2 directly.
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		for i := 1; i <= m; i++ {
			pmm *= -float64(2*i-1) * somx2
		}
	}
	if l == m {
		return pmm
	}

	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}

	// Slide the two running values up the recurrence until degree l.
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}

	return pll
}

// SphericalHarmonicValue evaluates the real (cosine) part of the spherical
// harmonic Y_l^m at polar angle theta and azimuthal angle phi (radians):
//
//	Y(θ,φ) = N · P_l^|m|(cos θ) · cos(mφ) · s
//	N      = sqrt((2l+1)·(l-|m|)! / (4π·(l+|m|)!))
//	s      = (-1)^|m| for m < 0, +1 otherwise
//
// The sine (imaginary) component is discarded on purpose: the value feeds a
// single-channel colormap, not a complex field.
func SphericalHarmonicValue(l, m int, theta, phi float64) float64 {
	absM := m
	if absM < 0 {
		absM = -absM
	}

	cosTheta := math.Cos(theta)
	norm := math.Sqrt(float64(2*l+1) * factorial(l-absM) / (4 * math.Pi * factorial(l+absM)))
	legendre := LegendreP(l, absM, cosTheta)
	realPart := math.Cos(float64(m) * phi)

	// Condon-Shortley phase for negative orders.
	sign := 1.0
	if m < 0 && absM%2 == 1 {
		sign = -1.0
	}

	return norm * legendre * realPart * sign
}

// factorial returns n! as a float64, with n <= 1 mapping to 1.
// (l+|m|)! reaches ~40! at MaxDegree, which stays finite in float64 but
// costs a few ulps of precision; that is the documented accuracy boundary
// of the normalization constant.
func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}
