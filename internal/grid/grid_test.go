package grid

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestDimensions(t *testing.T) {
	cases := []struct {
		resolution int
		widthMM    float64
		heightMM   float64
		rows, cols int
	}{
		// portrait plate: rows carry the resolution
		{800, 150, 200, 800, 600},
		// landscape plate: cols carry the resolution
		{800, 200, 150, 600, 800},
		// square plate
		{500, 100, 100, 500, 500},
		// extreme aspect still yields a printable grid
		{100, 1000, 1, 2, 100},
	}

	for _, c := range cases {
		rows, cols := Dimensions(c.resolution, c.widthMM, c.heightMM)
		if rows != c.rows || cols != c.cols {
			t.Errorf("Dimensions(%d, %v, %v): expected (%d, %d), got (%d, %d)",
				c.resolution, c.widthMM, c.heightMM, c.rows, c.cols, rows, cols)
		}
	}
}

func TestTransformCell(t *testing.T) {
	tf := NewTransform(r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 100, Y: 100}), 101, 101)

	cases := []struct {
		p        r2.Point
		row, col int
	}{
		// the south-west corner lands on the last row (row axis inverted)
		{r2.Point{X: 0, Y: 0}, 100, 0},
		{r2.Point{X: 100, Y: 100}, 0, 100},
		{r2.Point{X: 50, Y: 50}, 50, 50},
		// out of bounds points clamp to the nearest edge cell
		{r2.Point{X: -50, Y: 50}, 50, 0},
		{r2.Point{X: 50, Y: 250}, 0, 50},
	}

	for _, c := range cases {
		row, col := tf.Cell(c.p)
		if row != c.row || col != c.col {
			t.Errorf("Cell(%v): expected (%d, %d), got (%d, %d)", c.p, c.row, c.col, row, col)
		}
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := New(3, 3)
	g.Set(-1, 0, 5)
	g.Set(0, 9, 5)
	g.SetMax(9, 9, 5)
	if g.Max() != 0 {
		t.Errorf("out of range writes should be dropped, max is %v", g.Max())
	}
	if g.At(-1, 0) != 0 || g.At(0, 9) != 0 {
		t.Error("out of range reads should return 0")
	}
}

func TestSetMaxKeepsHigher(t *testing.T) {
	g := New(2, 2)
	g.SetMax(0, 0, 0.8)
	g.SetMax(0, 0, 0.3)
	if g.At(0, 0) != 0.8 {
		t.Errorf("expected 0.8, got %v", g.At(0, 0))
	}
	g.SetMax(0, 0, 0.9)
	if g.At(0, 0) != 0.9 {
		t.Errorf("expected 0.9, got %v", g.At(0, 0))
	}
}

func TestNormalize(t *testing.T) {
	g := New(2, 2)
	g.Set(0, 0, 0.5)
	g.Set(1, 1, 2.0)
	g.Normalize()
	if g.At(1, 1) != 1.0 {
		t.Errorf("expected max to normalize to 1, got %v", g.At(1, 1))
	}
	if g.At(0, 0) != 0.25 {
		t.Errorf("expected 0.25, got %v", g.At(0, 0))
	}
}

func TestNormalizeEmptyIsNoOp(t *testing.T) {
	g := New(2, 2)
	g.Set(0, 1, -0.5)
	g.Normalize()
	if g.At(0, 1) != -0.5 {
		t.Errorf("normalize should not rescale without a positive max, got %v", g.At(0, 1))
	}
}

func TestMergeMax(t *testing.T) {
	a, b := New(2, 2), New(2, 2)
	a.Set(0, 0, 1.0)
	b.Set(0, 0, 0.5)
	b.Set(1, 1, 0.5)
	a.MergeMax(b)
	if a.At(0, 0) != 1.0 {
		t.Errorf("merge must never lower a cell, got %v", a.At(0, 0))
	}
	if a.At(1, 1) != 0.5 {
		t.Errorf("expected 0.5, got %v", a.At(1, 1))
	}
}

func TestMergeZero(t *testing.T) {
	a, b := New(2, 2), New(2, 2)
	a.Set(0, 0, 0.2)
	b.Set(0, 0, 0.9)
	b.Set(0, 1, 0.9)
	b.Set(1, 0, -0.1)
	a.MergeZero(b)
	if a.At(0, 0) != 0.2 {
		t.Errorf("occupied cells must keep their value, got %v", a.At(0, 0))
	}
	if a.At(0, 1) != 0.9 {
		t.Errorf("empty cells should take the merged value, got %v", a.At(0, 1))
	}
	if a.At(1, 0) != 0 {
		t.Errorf("negative values never merge, got %v", a.At(1, 0))
	}
}

func TestGaussianZeroSigmaIsNoOp(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 2, 1.0)
	Gaussian(g, 0)
	if g.At(2, 2) != 1.0 || g.At(2, 3) != 0 {
		t.Error("sigma 0 must leave the grid untouched")
	}
}

func TestGaussianSpreadsAnImpulse(t *testing.T) {
	g := New(21, 21)
	g.Set(10, 10, 1.0)
	Gaussian(g, 1.0)

	if g.At(10, 10) >= 1.0 {
		t.Errorf("peak should be reduced, got %v", g.At(10, 10))
	}
	if g.At(10, 11) <= 0 || g.At(11, 10) <= 0 {
		t.Error("neighbours should receive mass")
	}
	if g.At(10, 10) <= g.At(10, 11) {
		t.Error("the impulse cell should stay the peak")
	}

	// symmetric kernel, symmetric result
	if g.At(10, 9) != g.At(10, 11) || g.At(9, 10) != g.At(11, 10) {
		t.Error("blur is not symmetric around the impulse")
	}

	// reflection at the edges keeps the total mass
	total := 0.0
	for row := 0; row < 21; row++ {
		for col := 0; col < 21; col++ {
			total += g.At(row, col)
		}
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("expected blur to conserve mass, total is %v", total)
	}
}
