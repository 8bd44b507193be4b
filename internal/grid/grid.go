package grid

import (
	"gonum.org/v1/gonum/floats"
)

// Grid is a dense row-major grid of float height values.
// Writes outside the grid are dropped silently - callers rasterizing
// clamped world coordinates shouldn't have to range check every pixel.
type Grid struct {
	rows  int
	cols  int
	cells []float64
}

// New returns a zeroed Grid of the given dimensions
func New(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]float64, rows*cols)}
}

// Rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the value at (row, col), 0 if out of range
func (g *Grid) At(row, col int) float64 {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0
	}
	return g.cells[row*g.cols+col]
}

// Set writes v at (row, col)
func (g *Grid) Set(row, col int, v float64) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row*g.cols+col] = v
}

// SetMax writes max(existing, v) at (row, col).
// Later writes within a pass never erase higher values already present.
func (g *Grid) SetMax(row, col int, v float64) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	i := row*g.cols + col
	if v > g.cells[i] {
		g.cells[i] = v
	}
}

// Max returns the highest value in the grid
func (g *Grid) Max() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	return floats.Max(g.cells)
}

// Normalize divides the grid by its maximum value.
// A no-op if the max isn't positive - rescale, never clamp from below.
func (g *Grid) Normalize() {
	max := g.Max()
	if max <= 0 {
		return
	}
	floats.Scale(1/max, g.cells)
}

// MergeMax merges o into g cell-wise keeping the larger value
func (g *Grid) MergeMax(o *Grid) {
	for i, v := range o.cells {
		if v > g.cells[i] {
			g.cells[i] = v
		}
	}
}

// MergeZero merges o into g only where g is still exactly zero,
// and even then only values above zero.
func (g *Grid) MergeZero(o *Grid) {
	for i, v := range o.cells {
		if g.cells[i] == 0 && v > 0 {
			g.cells[i] = v
		}
	}
}
