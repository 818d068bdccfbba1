package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string         `json:"hex"` // Hex format "#RRGGBB"
	RGB colorblind.RGB `json:"rgb"` // RGB components
	HSL HSLColor       `json:"hsl"` // HSL representation
}

// NewColorResult describes c in hex, RGB and HSL form.
func NewColorResult(c colorblind.RGB) ColorResult {
	return ColorResult{
		Hex: c.Hex(),
		RGB: c,
		HSL: rgbToHSL(c),
	}
}

// PixelSample is the color found at one pixel.
type PixelSample struct {
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Alpha uint8       `json:"alpha"` // Opacity at the pixel (0-255)
	Color ColorResult `json:"color"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *PixelSample: The straight (non-premultiplied) color and alpha at (x, y).
//   - error: Non-nil if coordinates are outside the image bounds.
//
// The color is read as NRGBA so that semi-transparent pixels report their
// true color rather than a darkened premultiplied value.
func SampleColor(img image.Image, x, y int) (*PixelSample, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return &PixelSample{
		X:     x,
		Y:     y,
		Alpha: c.A,
		Color: NewColorResult(colorblind.RGB{R: c.R, G: c.G, B: c.B}),
	}, nil
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string         `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64        `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        colorblind.RGB `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the N most common colors from an image.
//
// To group similar colors, each RGB component is quantized down to a
// multiple of 16, so #F0F0F0 and #FAFAFA are counted together as #F0F0F0.
// Fully transparent pixels are skipped. Ties are broken by hex value so the
// result is deterministic.
func DominantColors(img image.Image, count int) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	colorCounts := make(map[colorblind.RGB]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			key := colorblind.RGB{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}
			colorCounts[key]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(colorCounts))
	for rgb, cnt := range colorCounts {
		colors = append(colors, ColorFrequency{
			Hex:        rgb.Hex(),
			Percentage: float64(cnt) / float64(totalPixels) * 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// rgbToHSL converts an 8-bit color to HSL with integer degrees and percents.
func rgbToHSL(c colorblind.RGB) HSLColor {
	h, s, l := c.Colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
