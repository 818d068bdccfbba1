package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FitWithin scales img down so that it fits inside maxWidth x maxHeight,
// preserving its aspect ratio.
//
// Images already within bounds are returned as an unscaled NRGBA copy.
// Larger images are resampled with the Lanczos filter. Images are never
// scaled up. The result always has bounds starting at (0,0).
func FitWithin(img image.Image, maxWidth, maxHeight int) (*image.NRGBA, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid bounds %dx%d: width and height must be positive", maxWidth, maxHeight)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return imaging.Clone(img), nil
	}

	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos), nil
}
