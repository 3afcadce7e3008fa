// Command grid-export evaluates a spherical harmonic on a regular lat/lon
// grid and writes the result as a NetCDF dataset.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.ngs.io/harmonics/internal/adapter/export"
	"go.ngs.io/harmonics/internal/domain"
)

func main() {
	degree := flag.Int("degree", 2, fmt.Sprintf("Harmonic degree l (0-%d)", domain.MaxDegree))
	order := flag.Int("order", 1, "Harmonic order m (|m| <= l)")
	resolution := flag.Float64("resolution", 1.0, "Grid resolution in degrees")
	outDir := flag.String("out", "./data", "Output directory for NetCDF files")

	flag.Parse()

	grid, err := export.EvaluateGrid(*degree, *order, *resolution)
	if err != nil {
		log.Fatalf("Failed to evaluate grid: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	path := filepath.Join(*outDir, fmt.Sprintf("y_%d_%d.nc", *degree, *order))
	if err := export.WriteNetCDF(path, grid); err != nil {
		log.Fatalf("Failed to write NetCDF: %v", err)
	}

	log.Printf("Wrote Y(%d,%d) at %.2f° resolution (%dx%d) to %s",
		*degree, *order, *resolution, len(grid.Lat), len(grid.Lon), path)
}
