package domain

import (
	"math"
	"testing"
)

// TestLegendreP_OrderZeroAtOne checks P_l^0(1) == 1 for every degree.
func TestLegendreP_OrderZeroAtOne(t *testing.T) {
	for l := 0; l <= MaxDegree; l++ {
		result := LegendreP(l, 0, 1.0)
		if math.Abs(result-1.0) > 1e-9 {
			t.Errorf("LegendreP(%d, 0, 1): expected 1.0, got %.12f", l, result)
		}
	}
}

// TestLegendreP_OutOfRangeOrder checks that out-of-range orders return 0.
func TestLegendreP_OutOfRangeOrder(t *testing.T) {
	xs := []float64{-1, -0.5, 0, 0.5, 1}

	for _, x := range xs {
		if result := LegendreP(2, 3, x); result != 0 {
			t.Errorf("LegendreP(2, 3, %.1f): expected 0, got %.12f", x, result)
		}
		if result := LegendreP(5, -1, x); result != 0 {
			t.Errorf("LegendreP(5, -1, %.1f): expected 0, got %.12f", x, result)
		}
	}
}

// TestLegendreP_DegreeZero checks P_0^0(x) == 1 across the domain.
func TestLegendreP_DegreeZero(t *testing.T) {
	for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
		if result := LegendreP(0, 0, x); result != 1 {
			t.Errorf("LegendreP(0, 0, %.1f): expected 1, got %.12f", x, result)
		}
	}
}

// TestLegendreP_ClosedForms checks low degrees against their closed forms:
// P_1^0(x) = x, P_2^0(x) = (3x²-1)/2, P_1^1(x) = -sqrt(1-x²).
func TestLegendreP_ClosedForms(t *testing.T) {
	xs := []float64{-1, -0.5, 0, 0.5, 1}

	for _, x := range xs {
		if result := LegendreP(1, 0, x); math.Abs(result-x) > 1e-12 {
			t.Errorf("LegendreP(1, 0, %.1f): expected %.12f, got %.12f", x, x, result)
		}

		expected := (3*x*x - 1) / 2
		if result := LegendreP(2, 0, x); math.Abs(result-expected) > 1e-12 {
			t.Errorf("LegendreP(2, 0, %.1f): expected %.12f, got %.12f", x, expected, result)
		}
	}

	// Seed-step correctness for m > 0.
	expected := -math.Sqrt(0.75)
	if result := LegendreP(1, 1, 0.5); math.Abs(result-expected) > 1e-12 {
		t.Errorf("LegendreP(1, 1, 0.5): expected %.12f, got %.12f", expected, result)
	}
}

// TestLegendreP_RecurrenceStability checks that high-degree evaluation stays
// bounded on the interior of the domain (|P_l^0(x)| <= 1 for |x| <= 1).
func TestLegendreP_RecurrenceStability(t *testing.T) {
	for l := 2; l <= MaxDegree; l++ {
		for _, x := range []float64{-0.9, -0.3, 0.1, 0.7} {
			result := LegendreP(l, 0, x)
			if math.IsNaN(result) || math.Abs(result) > 1.0+1e-9 {
				t.Errorf("LegendreP(%d, 0, %.1f): out of bounds: %.12f", l, x, result)
			}
		}
	}
}

// TestSphericalHarmonicValue_Monopole checks that Y_0^0 is the constant
// 1/sqrt(4π) regardless of direction.
func TestSphericalHarmonicValue_Monopole(t *testing.T) {
	expected := 1 / math.Sqrt(4*math.Pi)

	angles := []struct{ theta, phi float64 }{
		{0, 0},
		{math.Pi / 2, math.Pi},
		{math.Pi, 1.5 * math.Pi},
		{0.3, 4.2},
	}

	for _, a := range angles {
		result := SphericalHarmonicValue(0, 0, a.theta, a.phi)
		if math.Abs(result-expected) > 1e-12 {
			t.Errorf("Y(0,0) at (%.2f, %.2f): expected %.12f, got %.12f",
				a.theta, a.phi, expected, result)
		}
	}
}

// TestSphericalHarmonicValue_NegativeOrderSign verifies the sign convention
// for negative orders against the explicit formula: both signs share the
// normalization, Legendre factor, and cos(|m|φ) term, so negating an odd
// order flips the sign and negating an even order leaves it unchanged.
func TestSphericalHarmonicValue_NegativeOrderSign(t *testing.T) {
	theta, phi := 0.7, 1.1

	// Odd |m|: Y(2,-1) = -Y(2,1).
	pos := SphericalHarmonicValue(2, 1, theta, phi)
	neg := SphericalHarmonicValue(2, -1, theta, phi)
	if math.Abs(neg+pos) > 1e-12 {
		t.Errorf("Y(2,-1) = %.12f, expected -Y(2,1) = %.12f", neg, -pos)
	}

	// Even |m|: Y(2,-2) = Y(2,2).
	pos = SphericalHarmonicValue(2, 2, theta, phi)
	neg = SphericalHarmonicValue(2, -2, theta, phi)
	if math.Abs(neg-pos) > 1e-12 {
		t.Errorf("Y(2,-2) = %.12f, expected Y(2,2) = %.12f", neg, pos)
	}
}

// TestSphericalHarmonicValue_KnownDipole checks Y_1^0 against its closed
// form sqrt(3/4π)·cos(θ).
func TestSphericalHarmonicValue_KnownDipole(t *testing.T) {
	norm := math.Sqrt(3 / (4 * math.Pi))

	for _, theta := range []float64{0, 0.5, math.Pi / 2, 2.5, math.Pi} {
		expected := norm * math.Cos(theta)
		result := SphericalHarmonicValue(1, 0, theta, 0.9)
		if math.Abs(result-expected) > 1e-12 {
			t.Errorf("Y(1,0) at theta=%.2f: expected %.12f, got %.12f",
				theta, expected, result)
		}
	}
}

// TestSphericalHarmonicValue_Purity checks that repeated evaluation with
// identical inputs is bit-identical.
func TestSphericalHarmonicValue_Purity(t *testing.T) {
	first := SphericalHarmonicValue(7, -4, 1.234, 5.678)
	second := SphericalHarmonicValue(7, -4, 1.234, 5.678)

	if first != second {
		t.Errorf("Repeated evaluation diverged: %.17g vs %.17g", first, second)
	}
}

// TestFactorial checks the iterative factorial helper.
func TestFactorial(t *testing.T) {
	tests := []struct {
		n        int
		expected float64
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}

	for _, tt := range tests {
		if result := factorial(tt.n); result != tt.expected {
			t.Errorf("factorial(%d): expected %.0f, got %.0f", tt.n, tt.expected, result)
		}
	}
}
