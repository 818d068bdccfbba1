package palette

import (
	"math"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// DefaultThreshold is the CIEDE2000 distance below which two colors are
// treated as hard to tell apart.
const DefaultThreshold = 10.0

// Pair is two palette colors that become hard to distinguish under a
// variant.
type Pair struct {
	First           int            `json:"first"`  // Index of the first color
	Second          int            `json:"second"` // Index of the second color
	FirstColor      colorblind.RGB `json:"first_color"`
	SecondColor     colorblind.RGB `json:"second_color"`
	OriginalDeltaE  float64        `json:"original_delta_e"`
	SimulatedDeltaE float64        `json:"simulated_delta_e"`
}

// Confusable returns every pair of colors that is at least threshold apart
// in normal vision but closer than threshold once simulated under v.
//
// Pairs are ordered by index, first then second. A non-positive threshold
// uses DefaultThreshold.
func Confusable(colors []colorblind.RGB, v colorblind.Variant, threshold float64) []Pair {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	simulated := make([]colorblind.RGB, len(colors))
	for i, c := range colors {
		simulated[i] = colorblind.Simulate(c, v)
	}

	pairs := []Pair{}
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			before := colors[i].DeltaE(colors[j])
			if before < threshold {
				continue
			}
			after := simulated[i].DeltaE(simulated[j])
			if after >= threshold {
				continue
			}
			pairs = append(pairs, Pair{
				First:           i,
				Second:          j,
				FirstColor:      colors[i],
				SecondColor:     colors[j],
				OriginalDeltaE:  math.Round(before*100) / 100,
				SimulatedDeltaE: math.Round(after*100) / 100,
			})
		}
	}
	return pairs
}
