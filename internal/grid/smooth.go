package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Gaussian applies a separable gaussian blur of the given sigma (in cells)
// to the grid in place. Sigma <= 0 is a no-op. Edges use reflection so
// features near the border aren't darkened.
func Gaussian(g *Grid, sigma float64) {
	if sigma <= 0 {
		return
	}

	kernel := gaussKernel(sigma)
	radius := len(kernel) / 2

	// horizontal pass
	tmp := make([]float64, len(g.cells))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			acc := 0.0
			for k, w := range kernel {
				acc += w * g.cells[row*g.cols+reflect(col+k-radius, g.cols)]
			}
			tmp[row*g.cols+col] = acc
		}
	}

	// vertical pass
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			acc := 0.0
			for k, w := range kernel {
				acc += w * tmp[reflect(row+k-radius, g.rows)*g.cols+col]
			}
			g.cells[row*g.cols+col] = acc
		}
	}
}

// gaussKernel builds a normalized 1D gaussian kernel.
// Radius matches scipy's gaussian_filter default truncation (4 sigma).
func gaussKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}

	kernel := make([]float64, 2*radius+1)
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// reflect mirrors an index back into [0, n)
func reflect(i, n int) int {
	if i < 0 {
		i = -i - 1
	}
	if i >= n {
		i = 2*n - i - 1
	}
	return clamp(i, 0, n-1)
}
