// Package usecase orchestrates harmonic field evaluation for the HTTP layer.
package usecase

import (
	"fmt"
	"runtime"
	"sync"

	"go.ngs.io/harmonics/internal/domain"
)

const (
	// DefaultResolution is the ring count used when the client does not ask
	// for one. Segments are twice the rings, matching the 2:1 span of the
	// azimuthal angle.
	DefaultResolution = 64

	// MaxResolution caps the mesh density a single request may ask for.
	MaxResolution = 256

	// MinResolution keeps the sphere from degenerating into a polyhedron
	// too coarse to color meaningfully.
	MinResolution = 8
)

// FieldRequest encapsulates a harmonic field evaluation request.
type FieldRequest struct {
	Degree     int
	Order      int
	Resolution int // Mesh rings; segments are derived as 2×rings.
}

// FieldResponse contains the evaluated field in the layout the WebGL
// renderer uploads directly: flattened vertex positions, triangle indices,
// per-vertex values and web colors.
type FieldResponse struct {
	Degree     int               `json:"degree"`
	Order      int               `json:"order"`
	Resolution int               `json:"resolution"`
	Mode       string            `json:"mode"`
	Positions  []float64         `json:"positions"` // x,y,z triples.
	Indices    []uint32          `json:"indices"`
	Values     []float64         `json:"values"`
	Colors     []string          `json:"colors"` // "#rrggbb" per vertex.
	Meta       map[string]string `json:"meta"`
}

// HarmonicUseCase evaluates spherical harmonic fields for the API.
type HarmonicUseCase struct{}

// NewHarmonicUseCase creates a new harmonic use case.
func NewHarmonicUseCase() *HarmonicUseCase {
	return &HarmonicUseCase{}
}

// Validate checks if the request is valid.
func (r *FieldRequest) Validate() error {
	mode := domain.Mode{Degree: r.Degree, Order: r.Order}

	if r.Degree < 0 {
		return fmt.Errorf("degree must be non-negative")
	}
	if r.Degree > domain.MaxDegree {
		return fmt.Errorf("degree must be at most %d (recurrence accuracy boundary)", domain.MaxDegree)
	}
	if !mode.Valid() {
		return fmt.Errorf("order must satisfy |order| <= degree")
	}

	if r.Resolution < MinResolution || r.Resolution > MaxResolution {
		return fmt.Errorf("resolution must be between %d and %d", MinResolution, MaxResolution)
	}

	return nil
}

// Field evaluates Y(degree, order) over a unit-sphere mesh.
func (uc *HarmonicUseCase) Field(req FieldRequest) (*FieldResponse, error) {
	if req.Resolution == 0 {
		req.Resolution = DefaultResolution
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	mesh := domain.NewSphereMesh(req.Resolution, 2*req.Resolution)
	values := evaluateField(req.Degree, req.Order, mesh.Vertices)

	positions := make([]float64, 0, len(mesh.Vertices)*3)
	colors := make([]string, len(values))
	rounded := make([]float64, len(values))
	for i, v := range mesh.Vertices {
		positions = append(positions, v.X, v.Y, v.Z)
		colors[i] = domain.ValueToColor(values[i]).Hex()
		rounded[i] = roundToDecimal(values[i], 6)
	}

	mode := domain.Mode{Degree: req.Degree, Order: req.Order}

	return &FieldResponse{
		Degree:     req.Degree,
		Order:      req.Order,
		Resolution: req.Resolution,
		Mode:       mode.Name(),
		Positions:  positions,
		Indices:    mesh.Indices,
		Values:     rounded,
		Colors:     colors,
		Meta: map[string]string{
			"model":       "real_spherical_harmonic",
			"description": mode.Describe(),
		},
	}, nil
}

// evaluateField computes the harmonic value at every mesh vertex. Each
// vertex is independent, so the slice is split into contiguous chunks
// across one worker per CPU.
func evaluateField(l, m int, vertices []domain.Vertex) []float64 {
	values := make([]float64, len(vertices))

	workers := runtime.NumCPU()
	if workers < 1 || len(vertices) < 2*workers {
		workers = 1
	}
	chunk := (len(vertices) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(vertices); start += chunk {
		end := min(start+chunk, len(vertices))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				v := vertices[i]
				values[i] = domain.SphericalHarmonicValue(l, m, v.Theta, v.Phi)
			}
		}(start, end)
	}
	wg.Wait()

	return values
}

// ModeInfo describes one entry of the mode catalogue.
type ModeInfo struct {
	Degree      int    `json:"degree"`
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Modes returns the catalogue of valid modes up to maxDegree.
func (uc *HarmonicUseCase) Modes(maxDegree int) []ModeInfo {
	modes := domain.ModeCatalogue(maxDegree)

	infos := make([]ModeInfo, len(modes))
	for i, m := range modes {
		infos[i] = ModeInfo{
			Degree:      m.Degree,
			Order:       m.Order,
			Name:        m.Name(),
			Description: m.Describe(),
		}
	}
	return infos
}

// roundToDecimal rounds to the given number of decimal places.
func roundToDecimal(val float64, precision int) float64 {
	multiplier := 1.0
	for i := 0; i < precision; i++ {
		multiplier *= 10
	}
	if val < 0 {
		return float64(int(val*multiplier-0.5)) / multiplier
	}
	return float64(int(val*multiplier+0.5)) / multiplier
}
