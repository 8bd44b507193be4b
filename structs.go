package maprelief

import (
	"github.com/golang/geo/r2"
)

// RoadSegment is an ordered run of world-space points with a category.
// The category decides the segment's relief height & rasterized width.
type RoadSegment struct {
	Points   []r2.Point
	Category RoadCategory
}

// PolygonFeature is a water or park area; closed ring(s) of world-space
// points in the same projection as the road network. Rings are processed
// independently; rings with fewer than 3 points are dropped, not fatal.
type PolygonFeature struct {
	Rings [][]r2.Point
}

// BoundingBox builds the world-space bounding rect (minx, miny, maxx, maxy)
func BoundingBox(minx, miny, maxx, maxy float64) r2.Rect {
	return r2.RectFromPoints(r2.Point{X: minx, Y: miny}, r2.Point{X: maxx, Y: maxy})
}

// Coverage holds generic stats about what the compositor painted
type Coverage struct {
	// cells touched by each feature class during its own pass
	// (before cross-pass priority is applied)
	RoadCells  int
	WaterCells int
	ParkCells  int

	// features skipped for degenerate geometry (short segments, <3 point rings)
	Dropped int
}

// newCoverage returns blank Coverage
func newCoverage() *Coverage {
	return &Coverage{}
}

// Diagnostics describe the built mesh
type Diagnostics struct {
	Vertices   int
	Faces      int
	VolumeMM3  float64
	Watertight bool
}
