package domain

import (
	"fmt"
	"math"
)

// Mode identifies a spherical harmonic Y_l^m by degree and order.
type Mode struct {
	Degree int
	Order  int
}

// Name returns the conventional "Y(l,m)" label for the mode.
func (m Mode) Name() string {
	return fmt.Sprintf("Y(%d,%d)", m.Degree, m.Order)
}

// orbitalLetters are the spectroscopic letters for low degrees, the naming
// most readers know from atomic orbitals.
var orbitalLetters = []string{"s", "p", "d", "f", "g", "h", "i", "k"}

// Describe classifies the mode: zonal modes (m = 0) vary only with
// latitude, sectoral modes (|m| = l) only with longitude, everything else
// is tesseral. Low degrees also get their orbital letter.
func (m Mode) Describe() string {
	absOrder := m.Order
	if absOrder < 0 {
		absOrder = -absOrder
	}

	var class string
	switch {
	case m.Degree == 0:
		return "Constant (monopole)"
	case absOrder == 0:
		class = "Zonal"
	case absOrder == m.Degree:
		class = "Sectoral"
	default:
		class = "Tesseral"
	}

	if m.Degree < len(orbitalLetters) {
		return fmt.Sprintf("%s (%s-type)", class, orbitalLetters[m.Degree])
	}
	return class
}

// Valid reports whether the mode satisfies 0 <= l <= MaxDegree and |m| <= l.
func (m Mode) Valid() bool {
	absOrder := m.Order
	if absOrder < 0 {
		absOrder = -absOrder
	}
	return m.Degree >= 0 && m.Degree <= MaxDegree && absOrder <= m.Degree
}

// ModeCatalogue enumerates every valid mode up to maxDegree in (l, m)
// order, m running from -l to l within each degree.
func ModeCatalogue(maxDegree int) []Mode {
	if maxDegree < 0 {
		return nil
	}
	if maxDegree > MaxDegree {
		maxDegree = MaxDegree
	}

	modes := make([]Mode, 0, (maxDegree+1)*(maxDegree+1))
	for l := 0; l <= maxDegree; l++ {
		for m := -l; m <= l; m++ {
			modes = append(modes, Mode{Degree: l, Order: m})
		}
	}
	return modes
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
