package colorblind

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects which color vision deficiency to simulate.
type Variant int

// The supported variants. The zero value is Normal.
const (
	Normal        Variant = iota
	Protanopia            // red-blind
	Deuteranopia          // green-blind
	Tritanopia            // blue-blind
	Protanomaly           // red-weak
	Deuteranomaly         // green-weak
	Tritanomaly           // blue-weak
	Achromatopsia         // total color blindness
)

// ErrUnknownVariant is returned by ParseVariant for names that do not match
// any variant.
var ErrUnknownVariant = errors.New("unknown color vision variant")

type variantInfo struct {
	name        string
	label       string
	description string
}

var variantTable = [...]variantInfo{
	Normal:        {"normal", "Normal Vision", "Typical trichromatic vision"},
	Protanopia:    {"protanopia", "Protanopia (Red-Blind)", "No functioning long-wavelength (red) cones"},
	Deuteranopia:  {"deuteranopia", "Deuteranopia (Green-Blind)", "No functioning medium-wavelength (green) cones"},
	Tritanopia:    {"tritanopia", "Tritanopia (Blue-Blind)", "No functioning short-wavelength (blue) cones"},
	Protanomaly:   {"protanomaly", "Protanomaly", "Reduced sensitivity of red cones (red-weak)"},
	Deuteranomaly: {"deuteranomaly", "Deuteranomaly", "Reduced sensitivity of green cones (green-weak)"},
	Tritanomaly:   {"tritanomaly", "Tritanomaly", "Reduced sensitivity of blue cones (blue-weak)"},
	Achromatopsia: {"achromatopsia", "Achromatopsia", "Total color blindness, seen as grayscale"},
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, len(variantTable))
	for i := range variantTable {
		vs[i] = Variant(i)
	}
	return vs
}

// IsValid reports whether v is one of the declared variants.
func (v Variant) IsValid() bool {
	return v >= Normal && int(v) < len(variantTable)
}

// String returns the lowercase canonical name, e.g. "protanopia".
func (v Variant) String() string {
	if !v.IsValid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantTable[v].name
}

// Label returns the human-readable label, e.g. "Protanopia (Red-Blind)".
func (v Variant) Label() string {
	if !v.IsValid() {
		return v.String()
	}
	return variantTable[v].label
}

// Description returns a one-line explanation of the deficiency.
func (v Variant) Description() string {
	if !v.IsValid() {
		return ""
	}
	return variantTable[v].description
}

// ParseVariant resolves a variant from its canonical name or its label.
//
// Matching is case-insensitive and ignores surrounding whitespace, so
// "Protanopia", "protanopia" and "Protanopia (Red-Blind)" all resolve to
// Protanopia. An empty name resolves to Normal.
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Normal, nil
	}
	for i, info := range variantTable {
		if key == info.name || key == strings.ToLower(info.label) {
			return Variant(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// MarshalText implements encoding.TextMarshaler using the canonical name.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseVariant.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
