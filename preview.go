package maprelief

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// ColourScheme defines how feature classes are coloured in a preview.
type ColourScheme struct {
	Roads color.Color
	Water color.Color
	Parks color.Color
	Plate color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Roads: colornames.Dimgray,
		Water: colornames.Lightblue,
		Parks: colornames.Lightgreen,
		Plate: colornames.Whitesmoke,
	}
}

// PreviewImage renders a 2D diagnostic image of the composited grid, one
// pixel per cell, coloured by the class that won the cell (roads over
// water over parks, matching the compositor's priority).
func (r *Relief) PreviewImage(scheme *ColourScheme) image.Image {
	im := image.NewRGBA(image.Rect(0, 0, r.cols, r.rows))

	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			i := row*r.cols + col

			if r.roadBits.Get(i) {
				im.Set(col, row, scheme.Roads)
			} else if r.waterBits.Get(i) {
				im.Set(col, row, scheme.Water)
			} else if r.parkBits.Get(i) {
				im.Set(col, row, scheme.Parks)
			} else {
				im.Set(col, row, scheme.Plate)
			}
		}
	}

	return im
}

// SavePreview writes the preview as a PNG to the given path.
func (r *Relief) SavePreview(fpath string, scheme *ColourScheme) error {
	im := r.PreviewImage(scheme)
	ctx := gg.NewContextForRGBA(im.(*image.RGBA))
	return ctx.SavePNG(fpath)
}
