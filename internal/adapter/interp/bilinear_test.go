package interp

import (
	"math"
	"testing"
)

// TestBilinearInterpolate_CenterPoint tests interpolation at the center of a grid cell
func TestBilinearInterpolate_CenterPoint(t *testing.T) {
	cell := GridCell{
		X0: 0.0, X1: 2.0,
		Y0: 0.0, Y1: 2.0,
		V00: 1.0, V10: 3.0,
		V01: 5.0, V11: 7.0,
	}

	// At center (1.0, 1.0), t=0.5, u=0.5
	// Result = 0.25 * (1 + 3 + 5 + 7) = 4.0
	result, err := BilinearInterpolate(cell, 1.0, 1.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := 4.0
	if math.Abs(result-expected) > 1e-9 {
		t.Errorf("Center point: expected %.10f, got %.10f", expected, result)
	}
}

// TestBilinearInterpolate_CornerPoints tests that corners return exact values
func TestBilinearInterpolate_CornerPoints(t *testing.T) {
	cell := GridCell{
		X0: 0.0, X1: 10.0,
		Y0: 0.0, Y1: 10.0,
		V00: 1.0, V10: 2.0,
		V01: 3.0, V11: 4.0,
	}

	tests := []struct {
		x, y     float64
		expected float64
		name     string
	}{
		{0.0, 0.0, 1.0, "bottom-left"},
		{10.0, 0.0, 2.0, "bottom-right"},
		{0.0, 10.0, 3.0, "top-left"},
		{10.0, 10.0, 4.0, "top-right"},
	}

	for _, tt := range tests {
		result, err := BilinearInterpolate(cell, tt.x, tt.y)
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", tt.name, err)
		}

		if math.Abs(result-tt.expected) > 1e-9 {
			t.Errorf("%s corner: expected %.10f, got %.10f", tt.name, tt.expected, result)
		}
	}
}

// TestBilinearInterpolate_OutOfBounds tests error handling for out-of-bounds points
func TestBilinearInterpolate_OutOfBounds(t *testing.T) {
	cell := GridCell{
		X0: 0.0, X1: 10.0,
		Y0: 0.0, Y1: 10.0,
		V00: 1.0, V10: 2.0,
		V01: 3.0, V11: 4.0,
	}

	tests := []struct {
		x, y float64
		name string
	}{
		{-1.0, 5.0, "x too small"},
		{11.0, 5.0, "x too large"},
		{5.0, -1.0, "y too small"},
		{5.0, 11.0, "y too large"},
	}

	for _, tt := range tests {
		_, err := BilinearInterpolate(cell, tt.x, tt.y)
		if err == nil {
			t.Errorf("%s: expected error for point (%.1f, %.1f), got nil", tt.name, tt.x, tt.y)
		}
	}
}

// TestGrid2D_InterpolateAt tests 2D grid interpolation at grid points and
// cell midpoints
func TestGrid2D_InterpolateAt(t *testing.T) {
	grid, err := NewGrid2D(
		[]float64{0.0, 1.0, 2.0},
		[]float64{0.0, 1.0, 2.0},
		[][]float64{
			{1.0, 2.0, 3.0}, // y=0
			{4.0, 5.0, 6.0}, // y=1
			{7.0, 8.0, 9.0}, // y=2
		},
	)
	if err != nil {
		t.Fatalf("Unexpected construction error: %v", err)
	}

	tests := []struct {
		x, y     float64
		expected float64
	}{
		{0.0, 0.0, 1.0},
		{1.0, 0.0, 2.0},
		{2.0, 0.0, 3.0},
		{0.0, 1.0, 4.0},
		{1.0, 1.0, 5.0},
		{2.0, 2.0, 9.0},
		// Midpoint of the first cell: average of 1, 2, 4, 5.
		{0.5, 0.5, 3.0},
	}

	for _, tt := range tests {
		result, err := grid.InterpolateAt(tt.x, tt.y)
		if err != nil {
			t.Fatalf("Unexpected error at (%.1f, %.1f): %v", tt.x, tt.y, err)
		}

		if math.Abs(result-tt.expected) > 1e-9 {
			t.Errorf("At (%.1f, %.1f): expected %.10f, got %.10f", tt.x, tt.y, tt.expected, result)
		}
	}
}

// TestGrid2D_OutsideRange tests lookup errors outside the grid
func TestGrid2D_OutsideRange(t *testing.T) {
	grid, err := NewGrid2D(
		[]float64{0.0, 1.0},
		[]float64{0.0, 1.0},
		[][]float64{{1, 2}, {3, 4}},
	)
	if err != nil {
		t.Fatalf("Unexpected construction error: %v", err)
	}

	if _, err := grid.InterpolateAt(2.0, 0.5); err == nil {
		t.Error("Expected error for x outside grid range")
	}
	if _, err := grid.InterpolateAt(0.5, -0.1); err == nil {
		t.Error("Expected error for y outside grid range")
	}
}

// TestNewGrid2D_Validation tests construction-time grid validation
func TestNewGrid2D_Validation(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []float64
		values  [][]float64
		wantErr bool
	}{
		{
			name:   "valid grid",
			x:      []float64{0.0, 1.0, 2.0},
			y:      []float64{0.0, 1.0},
			values: [][]float64{{1, 2, 3}, {4, 5, 6}},
		},
		{
			name:    "too few X coords",
			x:       []float64{0.0},
			y:       []float64{0.0, 1.0},
			values:  [][]float64{{1}, {2}},
			wantErr: true,
		},
		{
			name:    "row length mismatch",
			x:       []float64{0.0, 1.0},
			y:       []float64{0.0, 1.0},
			values:  [][]float64{{1, 2}, {3}},
			wantErr: true,
		},
		{
			name:    "rows do not match Y",
			x:       []float64{0.0, 1.0},
			y:       []float64{0.0, 1.0},
			values:  [][]float64{{1, 2}},
			wantErr: true,
		},
		{
			name:    "non-increasing X",
			x:       []float64{0.0, 0.0},
			y:       []float64{0.0, 1.0},
			values:  [][]float64{{1, 2}, {3, 4}},
			wantErr: true,
		},
		{
			name:    "decreasing Y",
			x:       []float64{0.0, 1.0},
			y:       []float64{1.0, 0.0},
			values:  [][]float64{{1, 2}, {3, 4}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		_, err := NewGrid2D(tt.x, tt.y, tt.values)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}
