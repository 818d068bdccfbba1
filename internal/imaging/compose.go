package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// sideBySideGap is the width of the transparent gutter between panels.
const sideBySideGap = 8

// SideBySide places left and right next to each other on a transparent
// canvas, top-aligned, separated by a small gutter.
func SideBySide(left, right image.Image) *image.NRGBA {
	lb, rb := left.Bounds(), right.Bounds()

	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}
	width := lb.Dx() + sideBySideGap + rb.Dx()

	canvas := imaging.New(width, height, color.NRGBA{})
	canvas = imaging.Paste(canvas, left, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, right, image.Pt(lb.Dx()+sideBySideGap, 0))
	return canvas
}
