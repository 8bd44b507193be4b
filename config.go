package maprelief

// MaxResolution is the largest grid edge we'll allocate.
// Memory grows with the square of Resolution & the mesh roughly doubles
// that again, so runs above this are refused before allocating anything.
const MaxResolution = 4096

// Settings hold configuration for a single relief generation run.
// Everything is passed explicitly at construction - there is no
// package-level state - so runs can't interfere with each other.
type Settings struct {
	// Physical plate size in mm. The grid is sized to preserve this
	// aspect ratio regardless of the shape of the map extent.
	WidthMM  float64
	HeightMM float64

	// BaseThicknessMM is the solid plate under (or around, if inverted)
	// the relief.
	BaseThicknessMM float64

	// MaxReliefHeightMM scales normalised heights [0,1] into mm.
	MaxReliefHeightMM float64

	// Invert carves features down into the plate instead of raising them.
	// Useful for stamp / mould style prints.
	Invert bool

	// Resolution is the cell count of the grid's longest side.
	// Must be at least 2 & at most MaxResolution.
	Resolution int

	// SmoothingSigma is the gaussian blur sigma in cells, applied once
	// after compositing. 0 disables smoothing. Slight bleed across
	// feature boundaries is expected.
	SmoothingSigma float64

	// RoadWidthScale multiplies each category's base rasterized width.
	RoadWidthScale float64

	// RoadHeights sets the relative target height [0,1] per category.
	// Missing categories fall back to the Default entry.
	RoadHeights map[RoadCategory]float64

	// WaterHeight is the relative height painted for water polygons.
	// May be negative - note that max-compositing means a negative value
	// can never pull an already painted cell down.
	WaterHeight float64

	// ParkHeight is the relative height painted for park polygons.
	// Parks only ever claim cells no road or water touched.
	ParkHeight float64
}

// DefaultSettings returns settings that print nicely on a common FDM
// printer; an A6-ish plate with a 3mm base & 2.5mm of relief.
func DefaultSettings() *Settings {
	return &Settings{
		WidthMM:           150.0,
		HeightMM:          200.0,
		BaseThicknessMM:   3.0,
		MaxReliefHeightMM: 2.5,
		Resolution:        800,
		SmoothingSigma:    1.0,
		RoadWidthScale:    1.5,
		RoadHeights: map[RoadCategory]float64{
			Motorway:    1.0,
			Primary:     0.85,
			Secondary:   0.70,
			Tertiary:    0.55,
			Residential: 0.40,
			Default:     0.40,
		},
		WaterHeight: -0.2,
		ParkHeight:  0.15,
	}
}

// validate checks the settings make sense before we allocate grids
func (s *Settings) validate() error {
	if s.WidthMM <= 0 || s.HeightMM <= 0 {
		return ErrInvalidSettings
	}
	if s.BaseThicknessMM < 0 || s.MaxReliefHeightMM < 0 || s.SmoothingSigma < 0 {
		return ErrInvalidSettings
	}
	if s.Resolution < 2 {
		return ErrInvalidSettings
	}
	if s.Resolution > MaxResolution {
		return ErrResolutionExceeded
	}
	return nil
}
