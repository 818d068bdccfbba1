package colorblind

// matrix maps normalized (R, G, B) to a simulated (R, G, B), one row per
// output channel.
type matrix [3][3]float32

var (
	protanopiaMatrix = matrix{
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	}
	deuteranopiaMatrix = matrix{
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	}
	tritanopiaMatrix = matrix{
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	}
)

// Anomalous trichromacy is modeled as a partial move toward the dichromat
// result.
const (
	anomalyWeight  float32 = 0.6
	originalWeight         = 1 - anomalyWeight
)

// ITU-R BT.601 luma weights.
const (
	lumaR float32 = 0.299
	lumaG float32 = 0.587
	lumaB float32 = 0.114
)

// Simulate returns how c appears to a viewer with the given deficiency.
//
// Normal returns c unchanged, as does any value that is not a declared
// Variant. Simulate never fails and does not allocate.
func Simulate(c RGB, v Variant) RGB {
	switch v {
	case Protanopia:
		return applyMatrix(c, &protanopiaMatrix)
	case Deuteranopia:
		return applyMatrix(c, &deuteranopiaMatrix)
	case Tritanopia:
		return applyMatrix(c, &tritanopiaMatrix)
	case Protanomaly:
		return blend(c, applyMatrix(c, &protanopiaMatrix))
	case Deuteranomaly:
		return blend(c, applyMatrix(c, &deuteranopiaMatrix))
	case Tritanomaly:
		return blend(c, applyMatrix(c, &tritanopiaMatrix))
	case Achromatopsia:
		return grayscale(c)
	default:
		return c
	}
}

func applyMatrix(c RGB, m *matrix) RGB {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	return RGB{
		R: toChannel(float32(m.dot(0, r, g, b) * 255)),
		G: toChannel(float32(m.dot(1, r, g, b) * 255)),
		B: toChannel(float32(m.dot(2, r, g, b) * 255)),
	}
}

// dot computes one output row. The explicit float32 conversions keep the
// compiler from fusing multiply-adds, which would change results on
// architectures with FMA instructions.
func (m *matrix) dot(row int, r, g, b float32) float32 {
	return float32(m[row][0]*r) + float32(m[row][1]*g) + float32(m[row][2]*b)
}

func blend(original, simulated RGB) RGB {
	return RGB{
		R: blendChannel(original.R, simulated.R),
		G: blendChannel(original.G, simulated.G),
		B: blendChannel(original.B, simulated.B),
	}
}

func blendChannel(original, simulated uint8) uint8 {
	return toChannel(float32(float32(original)*originalWeight) + float32(float32(simulated)*anomalyWeight))
}

func grayscale(c RGB) RGB {
	y := toChannel(float32(lumaR*float32(c.R)) + float32(lumaG*float32(c.G)) + float32(lumaB*float32(c.B)))
	return RGB{R: y, G: y, B: y}
}

// toChannel clamps v to [0, 255] and truncates it toward zero.
//
// Truncation is intentional: it reproduces the reference outputs exactly.
// Rounding would shift some channels up by one.
func toChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
