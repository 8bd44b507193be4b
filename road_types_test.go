package maprelief

import (
	"testing"
)

func TestClassify(t *testing.T) {
	cases := map[string]RoadCategory{
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
		"footway":        Default,
		"cycleway":       Default,
		"":               Default,
	}

	for tag, expect := range cases {
		got := Classify(tag)
		if got != expect {
			t.Errorf("Classify(%q) = %s, expected %s", tag, got, expect)
		}
	}
}

func TestCategoryHeightFallback(t *testing.T) {
	heights := map[RoadCategory]float64{Motorway: 1.0, Default: 0.3}

	if h := Motorway.height(heights); h != 1.0 {
		t.Errorf("expected motorway height 1.0, got %v", h)
	}
	if h := Tertiary.height(heights); h != 0.3 {
		t.Errorf("expected fallback to Default 0.3, got %v", h)
	}
	if h := Tertiary.height(map[RoadCategory]float64{}); h != fallbackRoadHeight {
		t.Errorf("expected built-in fallback %v, got %v", fallbackRoadHeight, h)
	}
}

func TestCategoryHeightsMonotonic(t *testing.T) {
	heights := DefaultSettings().RoadHeights

	order := []RoadCategory{Motorway, Primary, Secondary, Tertiary, Residential}
	for i := 0; i < len(order)-1; i++ {
		if heights[order[i]] <= heights[order[i+1]] {
			t.Errorf("%s height must exceed %s height", order[i], order[i+1])
		}
	}
	if heights[Residential] != heights[Default] {
		t.Errorf("residential & default heights should match")
	}
}

func TestCategoryWidth(t *testing.T) {
	if w := Motorway.width(1.5); w != 6 {
		t.Errorf("expected motorway width 6 at scale 1.5, got %d", w)
	}
	if w := Residential.width(0.1); w != 1 {
		t.Errorf("width must never drop below 1, got %d", w)
	}
	if w := RoadCategory("bogus").width(1.0); w != 2 {
		t.Errorf("unknown category should use Default base width, got %d", w)
	}
}
