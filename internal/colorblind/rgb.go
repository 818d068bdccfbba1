package colorblind

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color without alpha.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex formats the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String formats the color as "RGB(r, g, b) / #RRGGBB".
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d) / %s", c.R, c.G, c.B, c.Hex())
}

// Colorful converts the color to a go-colorful value in sRGB space.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// DeltaE returns the CIEDE2000 color difference between two colors on the
// conventional 0-100 scale, where values below about 1 are imperceptible.
func (c RGB) DeltaE(other RGB) float64 {
	// go-colorful works with L in 0-1, so its distances are 100x smaller.
	return c.Colorful().DistanceCIEDE2000(other.Colorful()) * 100
}
