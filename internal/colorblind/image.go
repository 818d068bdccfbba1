package colorblind

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// SimulateImage returns a copy of src with every pixel's color passed through
// Simulate.
//
// The result has the same bounds as src and each pixel keeps its alpha
// value. src is only read. Rows are split across goroutines; since every
// destination pixel depends on exactly one source pixel, no synchronization
// beyond the final join is needed.
//
// NRGBA stores straight (non-premultiplied) color, so the RGB channels seen
// by Simulate are the true color regardless of transparency.
func SimulateImage(src *image.NRGBA, v Variant) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return dst
	}

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			srcRow := src.Pix[y*src.Stride : y*src.Stride+width*4]
			dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
			for i := 0; i < len(srcRow); i += 4 {
				c := Simulate(RGB{R: srcRow[i], G: srcRow[i+1], B: srcRow[i+2]}, v)
				dstRow[i] = c.R
				dstRow[i+1] = c.G
				dstRow[i+2] = c.B
				dstRow[i+3] = srcRow[i+3]
			}
		}
	})

	return dst
}
