// Package interp provides bilinear interpolation on regular 2D grids, used
// to upsample coarsely evaluated harmonic fields to plot resolution.
package interp

import (
	"fmt"
	"math"
	"sort"
)

// GridCell is one cell of a regular grid with its four corner values.
type GridCell struct {
	X0, X1 float64 // X boundaries (e.g., azimuthal angle).
	Y0, Y1 float64 // Y boundaries (e.g., polar angle).

	// Corner values: V00 at (X0, Y0), V10 at (X1, Y0),
	// V01 at (X0, Y1), V11 at (X1, Y1).
	V00, V10, V01, V11 float64
}

// BilinearInterpolate interpolates within a grid cell:
//
//	f(x,y) ≈ (1-t)(1-u)f(x0,y0) + t(1-u)f(x1,y0) + (1-t)u·f(x0,y1) + tu·f(x1,y1)
//
// where t = (x-x0)/(x1-x0) and u = (y-y0)/(y1-y0).
func BilinearInterpolate(cell GridCell, x, y float64) (float64, error) {
	if cell.X1 <= cell.X0 {
		return 0, fmt.Errorf("invalid grid cell: X1 must be > X0")
	}
	if cell.Y1 <= cell.Y0 {
		return 0, fmt.Errorf("invalid grid cell: Y1 must be > Y0")
	}

	const epsilon = 1e-9
	if x < cell.X0-epsilon || x > cell.X1+epsilon {
		return 0, fmt.Errorf("x coordinate %.6f is outside grid cell [%.6f, %.6f]", x, cell.X0, cell.X1)
	}
	if y < cell.Y0-epsilon || y > cell.Y1+epsilon {
		return 0, fmt.Errorf("y coordinate %.6f is outside grid cell [%.6f, %.6f]", y, cell.Y0, cell.Y1)
	}

	t := (x - cell.X0) / (cell.X1 - cell.X0)
	u := (y - cell.Y0) / (cell.Y1 - cell.Y0)

	// Clamp against floating point drift at the edges.
	t = math.Max(0, math.Min(1, t))
	u = math.Max(0, math.Min(1, u))

	result := (1-t)*(1-u)*cell.V00 +
		t*(1-u)*cell.V10 +
		(1-t)*u*cell.V01 +
		t*u*cell.V11

	return result, nil
}

// Grid2D is a regular 2D grid validated once at construction. Values[i][j]
// corresponds to (X[j], Y[i]).
type Grid2D struct {
	x      []float64
	y      []float64
	values [][]float64
}

// NewGrid2D validates and wraps a regular grid. Coordinates must be
// strictly increasing with at least two samples per axis, and the value
// rows must match the coordinate dimensions.
func NewGrid2D(x, y []float64, values [][]float64) (*Grid2D, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("grid must have at least 2 X coordinates")
	}
	if len(y) < 2 {
		return nil, fmt.Errorf("grid must have at least 2 Y coordinates")
	}
	if len(values) != len(y) {
		return nil, fmt.Errorf("number of value rows (%d) must match Y coordinates (%d)", len(values), len(y))
	}
	for i, row := range values {
		if len(row) != len(x) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(x))
		}
	}

	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("X coordinates must be strictly increasing")
		}
	}
	for i := 1; i < len(y); i++ {
		if y[i] <= y[i-1] {
			return nil, fmt.Errorf("Y coordinates must be strictly increasing")
		}
	}

	return &Grid2D{x: x, y: y, values: values}, nil
}

// InterpolateAt performs bilinear interpolation at (x, y). The cell lookup
// is a binary search over each coordinate axis.
func (g *Grid2D) InterpolateAt(x, y float64) (float64, error) {
	xIdx, err := cellIndex(g.x, x)
	if err != nil {
		return 0, fmt.Errorf("x lookup: %w", err)
	}
	yIdx, err := cellIndex(g.y, y)
	if err != nil {
		return 0, fmt.Errorf("y lookup: %w", err)
	}

	cell := GridCell{
		X0:  g.x[xIdx],
		X1:  g.x[xIdx+1],
		Y0:  g.y[yIdx],
		Y1:  g.y[yIdx+1],
		V00: g.values[yIdx][xIdx],
		V10: g.values[yIdx][xIdx+1],
		V01: g.values[yIdx+1][xIdx],
		V11: g.values[yIdx+1][xIdx+1],
	}

	return BilinearInterpolate(cell, x, y)
}

// cellIndex returns an index i such that coords[i] <= v <= coords[i+1].
func cellIndex(coords []float64, v float64) (int, error) {
	if v < coords[0] || v > coords[len(coords)-1] {
		return 0, fmt.Errorf("coordinate %.6f is outside grid range [%.6f, %.6f]",
			v, coords[0], coords[len(coords)-1])
	}

	i := sort.SearchFloat64s(coords, v)
	if i > 0 {
		i--
	}
	if i >= len(coords)-1 {
		i = len(coords) - 2
	}
	return i, nil
}
