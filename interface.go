package maprelief

import (
	"github.com/golang/geo/r2"
)

// MapData tells maprelief what is on the map being turned into a relief.
// Where the data comes from (OSM, shapefiles, something hand built) is the
// caller's business - we only need three feature collections & the
// bounding rect they were clipped to. All inputs are treated as immutable
// for the duration of a run.
type MapData interface {
	// Bounds is the world-space rect covered by the plate
	Bounds() r2.Rect

	// Roads returns the classified road centrelines
	Roads() []RoadSegment

	// Water returns water polygons (rivers, lakes, sea)
	Water() []PolygonFeature

	// Parks returns park / green-space polygons
	Parks() []PolygonFeature
}

// StaticMap is a MapData over feature slices already in memory.
type StaticMap struct {
	Area         r2.Rect
	RoadSegments []RoadSegment
	WaterPolys   []PolygonFeature
	ParkPolys    []PolygonFeature
}

// Bounds of the map area
func (s *StaticMap) Bounds() r2.Rect {
	return s.Area
}

// Roads held by the map
func (s *StaticMap) Roads() []RoadSegment {
	return s.RoadSegments
}

// Water polygons held by the map
func (s *StaticMap) Water() []PolygonFeature {
	return s.WaterPolys
}

// Parks polygons held by the map
func (s *StaticMap) Parks() []PolygonFeature {
	return s.ParkPolys
}
