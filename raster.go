package maprelief

import (
	"image"

	"github.com/boljen/go-bitmap"
	"github.com/golang/geo/r2"

	"github.com/voidshard/maprelief/internal/grid"
	"github.com/voidshard/maprelief/internal/line"
)

// outlineThickness is the fixed rasterized width of polygon outlines,
// independent of road widths
const outlineThickness = 2

// gridPlot adapts a Grid to line.Plotter. Painting is max-composited &
// out of range pixels are silently skipped. Each newly touched cell is
// marked in the class bitmap & counted.
type gridPlot struct {
	g     *grid.Grid
	bits  bitmap.Bitmap
	cells *int
}

// Set paints max(existing, v) at pixel (x, y)
func (p *gridPlot) Set(x, y int, v float64) {
	if x < 0 || x >= p.g.Cols() || y < 0 || y >= p.g.Rows() {
		return
	}
	p.g.SetMax(y, x, v)

	i := y*p.g.Cols() + x
	if !p.bits.Get(i) {
		p.bits.Set(i, true)
		*p.cells++
	}
}

// gridPath transforms a run of world points into grid pixel coordinates.
// Out of range points are clamped onto the nearest edge cell, never dropped.
func gridPath(t *grid.Transform, pts []r2.Point) []image.Point {
	path := make([]image.Point, len(pts))
	for i, p := range pts {
		row, col := t.Cell(p)
		path[i] = image.Pt(col, row)
	}
	return path
}

// rasterizeRoads paints every road segment into the running grid at its
// category height & width. Overlapping roads max-composite, so the
// highest-class road wins contested cells.
func (r *Relief) rasterizeRoads() {
	plot := &gridPlot{g: r.hmap, bits: r.roadBits, cells: &r.Coverage.RoadCells}

	for _, seg := range r.data.Roads() {
		if len(seg.Points) < 2 {
			r.Coverage.Dropped++
			continue
		}

		line.DrawPolyline(
			plot,
			gridPath(r.tform, seg.Points),
			seg.Category.height(r.cfg.RoadHeights),
			seg.Category.width(r.cfg.RoadWidthScale),
		)
	}
}

// rasterizePolygons paints polygon features onto a fresh grid of the same
// dimensions as the running grid. Each ring gets a thick outline plus a
// single stamp at the centroid of its grid coordinates, so sparse outlines
// on large flat interiors aren't left at zero. This is a deliberate
// approximation, not a true fill.
func (r *Relief) rasterizePolygons(feats []PolygonFeature, height float64, bits bitmap.Bitmap, cells *int) *grid.Grid {
	out := grid.New(r.rows, r.cols)
	plot := &gridPlot{g: out, bits: bits, cells: cells}

	for _, f := range feats {
		for _, ring := range f.Rings {
			if len(ring) < 3 {
				r.Coverage.Dropped++
				continue
			}

			path := gridPath(r.tform, ring)
			if path[0] != path[len(path)-1] {
				path = append(path, path[0]) // close the ring
			}

			line.DrawPolyline(plot, path, height, outlineThickness)

			// centroid stamp
			sumX, sumY := 0, 0
			for _, p := range path {
				sumX += p.X
				sumY += p.Y
			}
			plot.Set(sumX/len(path), sumY/len(path), height)
		}
	}

	return out
}
