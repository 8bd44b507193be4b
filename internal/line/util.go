package line

import (
	"image"
)

// listPlot meets the Plotter interface,
// In our case we just append the x,y to a list,
type listPlot struct {
	pts []image.Point
}

// Set records a new point on the line
func (l *listPlot) Set(x, y int, v float64) {
	l.pts = append(l.pts, image.Pt(x, y))
}

// PointsBetween returns all points on a line between a,b
func PointsBetween(a, b image.Point) []image.Point {
	lp := &listPlot{pts: []image.Point{}}
	bresenham(lp, a.X, a.Y, b.X, b.Y, 0)
	return lp.pts
}

// thickPlot wraps a Plotter, expanding every stepped pixel into a square
// neighbourhood of radius thickness/2. Pixels outside whatever the
// underlying Plotter accepts are its problem (our grid drops them).
type thickPlot struct {
	base Plotter
	half int
}

// Set paints the square around x,y
func (t *thickPlot) Set(x, y int, v float64) {
	for dy := -t.half; dy <= t.half; dy++ {
		for dx := -t.half; dx <= t.half; dx++ {
			t.base.Set(x+dx, y+dy, v)
		}
	}
}

// DrawThick rasterizes the segment a-b onto p with the given height value,
// painting a square of the given thickness (in pixels) at every step.
// A zero length segment still paints its single (thick) pixel.
func DrawThick(p Plotter, a, b image.Point, v float64, thickness int) {
	half := thickness / 2
	if half < 0 {
		half = 0
	}
	bresenham(&thickPlot{base: p, half: half}, a.X, a.Y, b.X, b.Y, v)
}

// DrawPolyline rasterizes consecutive segments of the given path.
// Paths with fewer than 2 points are ignored.
func DrawPolyline(p Plotter, path []image.Point, v float64, thickness int) {
	for i := 0; i < len(path)-1; i++ {
		DrawThick(p, path[i], path[i+1], v, thickness)
	}
}
