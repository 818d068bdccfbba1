package palette

import (
	"math"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// NoSimulationText is shown in place of the simulated color for Normal
// vision.
const NoSimulationText = "No simulation applied"

// Entry describes one palette color under a variant.
type Entry struct {
	Index         int            `json:"index"`
	Original      colorblind.RGB `json:"original"`
	Simulated     colorblind.RGB `json:"simulated"`
	OriginalText  string         `json:"original_text"`  // "RGB(r, g, b) / #RRGGBB"
	SimulatedText string         `json:"simulated_text"` // Same format, or NoSimulationText
	DeltaE        float64        `json:"delta_e"`        // CIEDE2000 between original and simulated
}

// Report is a palette rendered under one variant.
type Report struct {
	Variant colorblind.Variant `json:"variant"`
	Entries []Entry            `json:"entries"`
}

// Simulate renders colors under v.
func Simulate(colors []colorblind.RGB, v colorblind.Variant) *Report {
	entries := make([]Entry, len(colors))
	for i, c := range colors {
		sim := colorblind.Simulate(c, v)
		e := Entry{
			Index:        i,
			Original:     c,
			Simulated:    sim,
			OriginalText: c.String(),
			DeltaE:       math.Round(c.DeltaE(sim)*100) / 100,
		}
		if v == colorblind.Normal {
			e.SimulatedText = NoSimulationText
		} else {
			e.SimulatedText = sim.String()
		}
		entries[i] = e
	}
	return &Report{Variant: v, Entries: entries}
}

// Report renders the palette's current colors under v.
func (p *Palette) Report(v colorblind.Variant) *Report {
	return Simulate(p.Colors(), v)
}
