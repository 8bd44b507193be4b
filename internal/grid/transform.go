package grid

import (
	"math"

	"github.com/golang/geo/r2"
)

// Dimensions returns (rows, cols) for a grid of at most `resolution` cells
// on its longest side, preserving the *physical* plate aspect ratio.
// The grid always reproduces the requested plate shape no matter what
// shape the geographic extent is.
func Dimensions(resolution int, widthMM, heightMM float64) (int, int) {
	aspect := widthMM / heightMM

	var rows, cols int
	if aspect >= 1 {
		cols = resolution
		rows = int(math.Round(float64(resolution) / aspect))
	} else {
		rows = resolution
		cols = int(math.Round(float64(resolution) * aspect))
	}

	// a mesh needs at least one quad per axis
	if rows < 2 {
		rows = 2
	}
	if cols < 2 {
		cols = 2
	}
	return rows, cols
}

// Transform maps world / projected coordinates onto grid cells.
type Transform struct {
	bounds r2.Rect
	rows   int
	cols   int
}

// NewTransform returns a Transform for the given bounding rect & grid size
func NewTransform(bounds r2.Rect, rows, cols int) *Transform {
	return &Transform{bounds: bounds, rows: rows, cols: cols}
}

// Cell returns the (row, col) for a world point.
// Coordinates are normalized by the bounding extent, scaled to [0, dim-1]
// and clamped - points outside the bounds land on the nearest edge cell
// rather than being dropped. The row axis is inverted so larger world Y
// (north) maps to smaller row indices.
func (t *Transform) Cell(p r2.Point) (int, int) {
	nx := (p.X - t.bounds.X.Lo) / t.bounds.X.Length()
	ny := (p.Y - t.bounds.Y.Lo) / t.bounds.Y.Length()

	col := clamp(int(nx*float64(t.cols-1)), 0, t.cols-1)
	row := clamp(int((1-ny)*float64(t.rows-1)), 0, t.rows-1)

	return row, col
}

// clamp v into [lo, hi]
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
