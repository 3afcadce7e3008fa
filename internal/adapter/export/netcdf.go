// Package export writes evaluated harmonic fields to NetCDF datasets for
// offline analysis.
package export

import (
	"fmt"

	"github.com/fhs/go-netcdf/netcdf"

	"go.ngs.io/harmonics/internal/domain"
)

// FieldGrid holds a harmonic field sampled on a regular lat/lon grid.
// Values are row-major: Values[i*len(Lon)+j] corresponds to (Lat[i], Lon[j]).
type FieldGrid struct {
	Degree int
	Order  int
	Lat    []float64 // Degrees, ascending.
	Lon    []float64 // Degrees, ascending.
	Values []float64
}

// EvaluateGrid samples Y(l, m) on a regular grid with the given resolution
// in degrees. Latitude spans [-90, 90] inclusive, longitude [0, 360).
// The polar angle is the colatitude: theta = 90° - lat.
func EvaluateGrid(l, m int, resolution float64) (*FieldGrid, error) {
	mode := domain.Mode{Degree: l, Order: m}
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid mode Y(%d,%d)", l, m)
	}
	if resolution <= 0 || resolution > 90 {
		return nil, fmt.Errorf("resolution must be in (0, 90] degrees")
	}

	nLat := int(180.0/resolution) + 1
	nLon := int(360.0 / resolution)

	grid := &FieldGrid{
		Degree: l,
		Order:  m,
		Lat:    make([]float64, nLat),
		Lon:    make([]float64, nLon),
		Values: make([]float64, nLat*nLon),
	}

	for i := range grid.Lat {
		grid.Lat[i] = -90.0 + float64(i)*resolution
	}
	for j := range grid.Lon {
		grid.Lon[j] = float64(j) * resolution
	}

	for i, lat := range grid.Lat {
		theta := domain.Deg2Rad(90.0 - lat)
		for j, lon := range grid.Lon {
			phi := domain.Deg2Rad(lon)
			grid.Values[i*nLon+j] = domain.SphericalHarmonicValue(l, m, theta, phi)
		}
	}

	return grid, nil
}

// WriteNetCDF writes the grid as a NetCDF4 dataset with lat, lon, and
// value variables.
func WriteNetCDF(path string, grid *FieldGrid) error {
	ds, err := netcdf.CreateFile(path, netcdf.CLOBBER|netcdf.NETCDF4)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer ds.Close()

	latDim, err := ds.AddDim("lat", uint64(len(grid.Lat)))
	if err != nil {
		return err
	}
	lonDim, err := ds.AddDim("lon", uint64(len(grid.Lon)))
	if err != nil {
		return err
	}

	latVar, err := ds.AddVar("lat", netcdf.DOUBLE, []netcdf.Dim{latDim})
	if err != nil {
		return err
	}
	latVar.WriteFloat64s(grid.Lat)

	lonVar, err := ds.AddVar("lon", netcdf.DOUBLE, []netcdf.Dim{lonDim})
	if err != nil {
		return err
	}
	lonVar.WriteFloat64s(grid.Lon)

	valueVar, err := ds.AddVar("value", netcdf.DOUBLE, []netcdf.Dim{latDim, lonDim})
	if err != nil {
		return err
	}
	valueVar.WriteFloat64s(grid.Values)

	return nil
}
