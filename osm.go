package maprelief

import (
	"github.com/golang/geo/r2"
	"github.com/paulmach/osm"
)

// OSMRoads converts already-fetched OSM ways into RoadSegments.
// Ways without a highway tag are skipped; node coordinates must already be
// resolved onto the way nodes (osm.Ways from an annotated source). Actually
// fetching data from a geospatial source is the caller's business.
func OSMRoads(ways osm.Ways) []RoadSegment {
	out := []RoadSegment{}

	for _, w := range ways {
		tag := w.Tags.Find("highway")
		if tag == "" {
			continue
		}

		pts := make([]r2.Point, 0, len(w.Nodes))
		for _, n := range w.Nodes {
			pts = append(pts, r2.Point{X: n.Lon, Y: n.Lat})
		}
		if len(pts) < 2 {
			continue
		}

		out = append(out, RoadSegment{Points: pts, Category: Classify(tag)})
	}

	return out
}
