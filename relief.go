package maprelief

import (
	"encoding/json"
	"fmt"

	"github.com/boljen/go-bitmap"

	"github.com/voidshard/maprelief/internal/grid"
)

var (
	// ErrInvalidBounds implies the bounding rect has no width or height
	ErrInvalidBounds = fmt.Errorf("bounding box must have positive width & height")

	// ErrInvalidSettings implies some Settings field is out of range
	ErrInvalidSettings = fmt.Errorf("settings are invalid")

	// ErrResolutionExceeded implies the configured resolution is over
	// MaxResolution. Raised before any grid is allocated.
	ErrResolutionExceeded = fmt.Errorf("resolution exceeds practical bound %d", MaxResolution)
)

// Relief holds the composited heightmap & resulting mesh for one run.
// A Relief is built once by New & never mutated afterwards; nothing is
// shared between runs so concurrent runs need no locking.
type Relief struct {
	cfg  *Settings
	data MapData

	rows  int
	cols  int
	hmap  *grid.Grid
	tform *grid.Transform

	// which feature class touched each cell, for previews / stats
	roadBits  bitmap.Bitmap
	waterBits bitmap.Bitmap
	parkBits  bitmap.Bitmap

	Mesh     *Mesh
	Coverage *Coverage
}

// New generates a relief from the given settings & map data.
// The run is synchronous & CPU bound; a caller wanting responsiveness
// should run it on a worker & discard the result to "cancel".
func New(cfg *Settings, data MapData) (*Relief, error) {
	r := &Relief{cfg: cfg, data: data}
	return r, r.build()
}

// build runs the main pipeline. The order here is the contract: each
// stage fully consumes its predecessor's output before the next begins.
func (r *Relief) build() error {
	err := r.init()
	if err != nil {
		return err
	}

	// roads first - they own contested cells outright
	r.rasterizeRoads()

	// water merges cell-wise max into the running grid. Painting is
	// max-composited too, so a negative water height can fill nothing
	// that is already higher - roads are never reduced by water.
	wgrid := r.rasterizePolygons(r.data.Water(), r.cfg.WaterHeight, r.waterBits, &r.Coverage.WaterCells)
	r.hmap.MergeMax(wgrid)

	// parks only claim cells still exactly zero - never roads, never
	// water, regardless of the park height
	pgrid := r.rasterizePolygons(r.data.Parks(), r.cfg.ParkHeight, r.parkBits, &r.Coverage.ParkCells)
	r.hmap.MergeZero(pgrid)

	grid.Gaussian(r.hmap, r.cfg.SmoothingSigma)
	r.hmap.Normalize()

	// the grid is frozen from here; the mesh reads it & never writes
	r.Mesh = buildMesh(r.hmap, r.cfg)

	return nil
}

// init validates config & inputs, then allocates the working grid.
// An entirely empty map is fine - that's a flat plate, not an error.
func (r *Relief) init() error {
	err := r.cfg.validate()
	if err != nil {
		return err
	}

	bnds := r.data.Bounds()
	if bnds.X.Length() <= 0 || bnds.Y.Length() <= 0 {
		return ErrInvalidBounds
	}

	r.rows, r.cols = grid.Dimensions(r.cfg.Resolution, r.cfg.WidthMM, r.cfg.HeightMM)
	r.hmap = grid.New(r.rows, r.cols)
	r.tform = grid.NewTransform(bnds, r.rows, r.cols)

	r.roadBits = bitmap.New(r.rows * r.cols)
	r.waterBits = bitmap.New(r.rows * r.cols)
	r.parkBits = bitmap.New(r.rows * r.cols)

	r.Coverage = newCoverage()

	return nil
}

// GridSize returns the heightmap dimensions (rows, cols)
func (r *Relief) GridSize() (int, int) {
	return r.rows, r.cols
}

// HeightAt returns the final composited & normalised height at (row, col)
func (r *Relief) HeightAt(row, col int) float64 {
	return r.hmap.At(row, col)
}

// reliefRecord is what SaveJSON writes - the run summary, not the mesh
type reliefRecord struct {
	Settings    *Settings
	Coverage    *Coverage
	Diagnostics *Diagnostics
}

// JSON returns a summary of the run (settings, coverage, mesh diagnostics)
func (r *Relief) JSON() ([]byte, error) {
	return json.Marshal(&reliefRecord{
		Settings:    r.cfg,
		Coverage:    r.Coverage,
		Diagnostics: r.Mesh.Diagnostics(),
	})
}

// SaveJSON writes the run summary to the given path
func (r *Relief) SaveJSON(fpath string) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}
	return writeFile(fpath, data)
}
