package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// changeThreshold is the mean per-channel difference above which a pixel
// counts as changed.
const changeThreshold = 10

// CompareResult summarizes how far a transformed image departs from its
// original.
type CompareResult struct {
	TotalPixels      int     `json:"total_pixels"`
	PixelsChanged    int     `json:"pixels_changed"`
	PercentChanged   float64 `json:"percent_changed"`
	AverageColorDiff float64 `json:"average_color_diff"` // Mean per-channel difference (0-255)
	AverageDeltaE    float64 `json:"average_delta_e"`    // Mean CIEDE2000 over sampled pixels
	MaxDeltaE        float64 `json:"max_delta_e"`
}

// maxDeltaESamples caps how many pixels are run through CIEDE2000, which is
// far more expensive than the channel difference.
const maxDeltaESamples = 4096

// CompareImages measures the color difference between two images of equal
// size, pixel for pixel. Alpha is ignored.
func CompareImages(original, transformed *image.NRGBA) (*CompareResult, error) {
	ob, tb := original.Bounds(), transformed.Bounds()
	if ob.Dx() != tb.Dx() || ob.Dy() != tb.Dy() {
		return nil, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", ob.Dx(), ob.Dy(), tb.Dx(), tb.Dy())
	}

	w, h := ob.Dx(), ob.Dy()
	totalPixels := w * h
	if totalPixels == 0 {
		return &CompareResult{}, nil
	}

	step := totalPixels / maxDeltaESamples
	if step < 1 {
		step = 1
	}

	pixelsChanged := 0
	var totalColorDiff, totalDeltaE, maxDeltaE float64
	sampled := 0

	for y := 0; y < h; y++ {
		oRow := original.Pix[y*original.Stride : y*original.Stride+w*4]
		tRow := transformed.Pix[y*transformed.Stride : y*transformed.Stride+w*4]
		for x := 0; x < w; x++ {
			i := x * 4
			o := colorblind.RGB{R: oRow[i], G: oRow[i+1], B: oRow[i+2]}
			t := colorblind.RGB{R: tRow[i], G: tRow[i+1], B: tRow[i+2]}

			diff := float64(absDiff(o.R, t.R)+absDiff(o.G, t.G)+absDiff(o.B, t.B)) / 3.0
			totalColorDiff += diff
			if diff > changeThreshold {
				pixelsChanged++
			}

			if (y*w+x)%step == 0 {
				d := 0.0
				if o != t {
					d = o.DeltaE(t)
				}
				totalDeltaE += d
				if d > maxDeltaE {
					maxDeltaE = d
				}
				sampled++
			}
		}
	}

	return &CompareResult{
		TotalPixels:      totalPixels,
		PixelsChanged:    pixelsChanged,
		PercentChanged:   math.Round(float64(pixelsChanged)/float64(totalPixels)*1000) / 10,
		AverageColorDiff: math.Round(totalColorDiff/float64(totalPixels)*100) / 100,
		AverageDeltaE:    math.Round(totalDeltaE/float64(sampled)*100) / 100,
		MaxDeltaE:        math.Round(maxDeltaE*100) / 100,
	}, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
