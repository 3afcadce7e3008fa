package domain

import "math"

// Vertex is a unit-sphere mesh vertex carrying both Cartesian coordinates
// and the spherical angles the harmonic is evaluated at.
type Vertex struct {
	X, Y, Z float64
	Theta   float64 // Polar angle in [0, π].
	Phi     float64 // Azimuthal angle in [0, 2π).
}

// SphereMesh is a UV-sphere tessellation with (Rings+1)×(Segments+1)
// vertices in row-major order (pole to pole) and counter-clockwise
// triangle indices. The seam column is duplicated so texture-style
// attributes stay continuous across φ = 0.
type SphereMesh struct {
	Rings    int
	Segments int
	Vertices []Vertex
	Indices  []uint32
}

// NewSphereMesh builds a unit-radius UV sphere. Resolutions below 3 rings
// or segments are raised to 3.
func NewSphereMesh(rings, segments int) *SphereMesh {
	if rings < 3 {
		rings = 3
	}
	if segments < 3 {
		segments = 3
	}

	mesh := &SphereMesh{
		Rings:    rings,
		Segments: segments,
		Vertices: make([]Vertex, 0, (rings+1)*(segments+1)),
		Indices:  make([]uint32, 0, rings*segments*6),
	}

	for i := 0; i <= rings; i++ {
		sinT, cosT := math.Sincos(math.Pi * float64(i) / float64(rings))
		for j := 0; j <= segments; j++ {
			sinP, cosP := math.Sincos(2 * math.Pi * float64(j) / float64(segments))

			x := sinT * cosP
			y := sinT * sinP
			z := cosT

			// Angles are re-derived from the Cartesian position, the same
			// conversion the renderer applies to arbitrary vertices.
			mesh.Vertices = append(mesh.Vertices, Vertex{
				X:     x,
				Y:     y,
				Z:     z,
				Theta: SphericalTheta(x, y, z),
				Phi:   SphericalPhi(x, y),
			})
		}
	}

	stride := uint32(segments + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride

			mesh.Indices = append(mesh.Indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}

	return mesh
}

// SphericalTheta returns the polar angle of a Cartesian point, acos(z/r).
// The origin maps to 0.
func SphericalTheta(x, y, z float64) float64 {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0
	}
	// Clamp against rounding before acos.
	return math.Acos(math.Max(-1, math.Min(1, z/r)))
}

// SphericalPhi returns the azimuthal angle atan2(y, x) shifted into [0, 2π).
func SphericalPhi(x, y float64) float64 {
	phi := math.Atan2(y, x)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	// The shift can round back up to 2π for angles a hair below zero;
	// wrap the seam onto 0.
	if phi >= 2*math.Pi {
		phi = 0
	}
	return phi
}
