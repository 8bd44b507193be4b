package maprelief

// RoadCategory is a closed classification of a road segment. Categories
// carry a target relief height & a rasterized line width - in practice a
// "motorway" cell ends up a taller, wider ridge than a "residential" one.
type RoadCategory string

const (
	Motorway    RoadCategory = "motorway"
	Primary     RoadCategory = "primary"
	Secondary   RoadCategory = "secondary"
	Tertiary    RoadCategory = "tertiary"
	Residential RoadCategory = "residential"
	Default     RoadCategory = "default"
)

var (
	allCategories = []RoadCategory{
		// ordered by their relative importance / height
		Motorway, Primary, Secondary, Tertiary, Residential, Default,
	}

	// raw upstream highway tag -> category
	rawCategories = map[string]RoadCategory{
		"motorway":       Motorway,
		"motorway_link":  Motorway,
		"trunk":          Primary,
		"trunk_link":     Primary,
		"primary":        Primary,
		"primary_link":   Primary,
		"secondary":      Secondary,
		"secondary_link": Secondary,
		"tertiary":       Tertiary,
		"tertiary_link":  Tertiary,
		"residential":    Residential,
		"living_street":  Residential,
		"unclassified":   Residential,
	}

	// base rasterized widths in grid cells, before RoadWidthScale
	baseWidths = map[RoadCategory]float64{
		Motorway:    4.0,
		Primary:     3.5,
		Secondary:   3.0,
		Tertiary:    2.5,
		Residential: 2.0,
		Default:     2.0,
	}
)

// fallbackRoadHeight applies when a Settings height map is missing both the
// category and a Default entry
const fallbackRoadHeight = 0.4

// Classify maps a raw upstream road tag onto a RoadCategory.
// Unrecognised tags become Default rather than failing.
func Classify(tag string) RoadCategory {
	c, ok := rawCategories[tag]
	if !ok {
		return Default
	}
	return c
}

// AllRoadCategories returns all known RoadCategory enums
func AllRoadCategories() []RoadCategory {
	return allCategories
}

// height returns the relief height for this category from the configured
// per-category heights, falling back to the Default entry
func (r RoadCategory) height(heights map[RoadCategory]float64) float64 {
	v, ok := heights[r]
	if ok {
		return v
	}
	v, ok = heights[Default]
	if ok {
		return v
	}
	return fallbackRoadHeight
}

// width returns the rasterized line thickness in grid cells
func (r RoadCategory) width(scale float64) int {
	base, ok := baseWidths[r]
	if !ok {
		base = baseWidths[Default]
	}
	return maxint(int(base*scale), 1)
}
