// Package palette manages an ordered list of colors and reports how the list
// looks under each color vision deficiency.
package palette

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
	"github.com/ironsheep/colorblind-sim-mcp/internal/colorparse"
)

// ErrIndexOutOfRange is returned by Remove for an index past the end of the
// palette.
var ErrIndexOutOfRange = errors.New("palette index out of range")

// Palette is an ordered, growable list of colors. It is safe for concurrent
// use.
type Palette struct {
	mu     sync.RWMutex
	colors []colorblind.RGB
}

// New creates a palette holding the given colors in order.
func New(colors ...colorblind.RGB) *Palette {
	return &Palette{colors: append([]colorblind.RGB(nil), colors...)}
}

// Add parses text and appends the color. On a parse error the palette is
// left unchanged and the *colorparse.ParseError is returned.
func (p *Palette) Add(text string) (colorblind.RGB, error) {
	c, err := colorparse.Parse(text)
	if err != nil {
		return colorblind.RGB{}, err
	}

	p.mu.Lock()
	p.colors = append(p.colors, c)
	p.mu.Unlock()

	return c, nil
}

// Remove deletes the color at index (0-based) and returns it.
func (p *Palette) Remove(index int) (colorblind.RGB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= len(p.colors) {
		return colorblind.RGB{}, fmt.Errorf("%w: %d (palette has %d colors)", ErrIndexOutOfRange, index, len(p.colors))
	}

	removed := p.colors[index]
	p.colors = append(p.colors[:index], p.colors[index+1:]...)
	return removed, nil
}

// Clear removes every color.
func (p *Palette) Clear() {
	p.mu.Lock()
	p.colors = nil
	p.mu.Unlock()
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.colors)
}

// Colors returns a copy of the colors in insertion order.
func (p *Palette) Colors() []colorblind.RGB {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]colorblind.RGB(nil), p.colors...)
}
