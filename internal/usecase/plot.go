package usecase

import (
	"fmt"
	"image"
	"math"

	"go.ngs.io/harmonics/internal/adapter/interp"
	"go.ngs.io/harmonics/internal/domain"
)

const (
	// MinPlotSize and MaxPlotSize bound the rendered image dimensions.
	MinPlotSize = 16
	MaxPlotSize = 2048

	// plotGridSize is the evaluation grid the plot is interpolated from.
	// The harmonic is smooth at degree <= 20, so a quarter-degree-scale
	// grid upsampled bilinearly is indistinguishable from per-pixel
	// evaluation at typical plot sizes.
	plotGridSize = 128
)

// PlotRequest describes an equirectangular plot of a harmonic field.
type PlotRequest struct {
	Degree int
	Order  int
	Width  int
	Height int
}

// Validate checks if the request is valid.
func (r *PlotRequest) Validate() error {
	field := FieldRequest{Degree: r.Degree, Order: r.Order, Resolution: DefaultResolution}
	if err := field.Validate(); err != nil {
		return err
	}

	if r.Width < MinPlotSize || r.Width > MaxPlotSize {
		return fmt.Errorf("width must be between %d and %d", MinPlotSize, MaxPlotSize)
	}
	if r.Height < MinPlotSize || r.Height > MaxPlotSize {
		return fmt.Errorf("height must be between %d and %d", MinPlotSize, MaxPlotSize)
	}

	return nil
}

// Plot renders an equirectangular map of Y(degree, order): the polar angle
// sweeps top to bottom, the azimuthal angle left to right. The field is
// evaluated on a coarse angle grid and bilinearly interpolated per pixel.
func (uc *HarmonicUseCase) Plot(req PlotRequest) (*image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	grid, err := evaluationGrid(req.Degree, req.Order, plotGridSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build evaluation grid: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, req.Width, req.Height))
	for y := 0; y < req.Height; y++ {
		theta := math.Pi * (float64(y) + 0.5) / float64(req.Height)
		for x := 0; x < req.Width; x++ {
			phi := 2 * math.Pi * (float64(x) + 0.5) / float64(req.Width)

			value, err := grid.InterpolateAt(phi, theta)
			if err != nil {
				// Pixel centers always land inside the grid; fall back to
				// direct evaluation if rounding says otherwise.
				value = domain.SphericalHarmonicValue(req.Degree, req.Order, theta, phi)
			}

			img.SetRGBA(x, y, domain.ValueToColor(value).RGBA())
		}
	}

	return img, nil
}

// evaluationGrid samples the harmonic on a regular (phi, theta) grid
// covering the full sphere, endpoints included.
func evaluationGrid(l, m, n int) (*interp.Grid2D, error) {
	phis := make([]float64, n+1)
	thetas := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		phis[i] = 2 * math.Pi * float64(i) / float64(n)
		thetas[i] = math.Pi * float64(i) / float64(n)
	}

	values := make([][]float64, n+1)
	for i, theta := range thetas {
		row := make([]float64, n+1)
		for j, phi := range phis {
			row[j] = domain.SphericalHarmonicValue(l, m, theta, phi)
		}
		values[i] = row
	}

	return interp.NewGrid2D(phis, thetas, values)
}
