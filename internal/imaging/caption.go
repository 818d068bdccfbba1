package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionHeight is the height of the strip added by Caption. basicfont's
// 7x13 face leaves two pixels above and below the glyphs.
const captionHeight = 17

// Caption returns a copy of img with a white strip above it holding text in
// black. Text wider than the image is clipped.
func Caption(img image.Image, text string) *image.NRGBA {
	b := img.Bounds()

	canvas := imaging.New(b.Dx(), b.Dy()+captionHeight, color.NRGBA{})
	draw.Draw(canvas, image.Rect(0, 0, b.Dx(), captionHeight), image.White, image.Point{}, draw.Src)
	canvas = imaging.Paste(canvas, img, image.Pt(0, captionHeight))

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(2), Y: fixed.I(basicfont.Face7x13.Ascent + 2)},
	}
	d.DrawString(text)
	return canvas
}
