package imaging

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// ToNRGBA returns img as a straight-alpha 8-bit image.
//
// An *image.NRGBA is returned as-is; any other type is converted into a new
// image with bounds starting at (0,0).
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}

// Simulate converts img to NRGBA and applies the color vision simulation.
// The source image is never modified.
func Simulate(img image.Image, v colorblind.Variant) *image.NRGBA {
	return colorblind.SimulateImage(ToNRGBA(img), v)
}

// RGB24 is a packed RGB pixel buffer without alpha, three bytes per pixel in
// row-major order. It is the format display surfaces take.
type RGB24 struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the color of the pixel at (x, y), relative to the top-left.
func (b *RGB24) At(x, y int) colorblind.RGB {
	i := (y*b.Width + x) * 3
	return colorblind.RGB{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

// ToRGB24 drops the alpha channel and packs the color channels.
//
// Alpha is discarded, not composited: a transparent pixel keeps its
// straight color.
func ToRGB24(img *image.NRGBA) *RGB24 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &RGB24{Width: w, Height: h, Pix: make([]uint8, 0, w*h*3)}

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			buf.Pix = append(buf.Pix, row[i], row[i+1], row[i+2])
		}
	}
	return buf
}
