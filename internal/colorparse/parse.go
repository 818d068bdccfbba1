// Package colorparse converts user-supplied color strings to RGB values.
//
// Accepted forms:
//   - "#RRGGBB" hex, case-insensitive
//   - "RRGGBB" hex without the leading '#'
//   - "R,G,B" decimal, whitespace around fields allowed
//   - "R,G,B,L" decimal RGBL; the luminance field is ignored
//
// Short hex ("#F00"), alpha hex, named colors and percentages are rejected.
// Only one leading '#' is removed, and channel values never take a sign, so
// "##FF0000" and "+1,2,3" are errors.
package colorparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/colorblind-sim-mcp/internal/colorblind"
)

// ParseError describes why a string could not be read as a color.
type ParseError struct {
	Input  string // The input as given, before trimming
	Reason string // Human-readable explanation
}

func (e *ParseError) Error() string {
	return e.Reason
}

var channelNames = [3]string{"red", "green", "blue"}

// Parse reads a color from text.
//
// Rules are applied in order and the first match decides the format:
//  1. Surrounding whitespace is trimmed; an empty string fails.
//  2. A leading '#' selects hex. Exactly six hex digits must follow.
//  3. A comma selects decimal. Three fields are R,G,B; four fields are
//     R,G,B,L. Any other field count falls through to rule 4.
//  4. Six hex digits with no '#' are read as hex.
//  5. Anything else fails with a message listing the accepted formats.
//
// Every failure is a *ParseError.
func Parse(text string) (colorblind.RGB, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return colorblind.RGB{}, &ParseError{Input: text, Reason: "empty input"}
	}

	if strings.HasPrefix(input, "#") {
		return parseHex(text, input[1:])
	}

	if strings.Contains(input, ",") {
		parts := strings.Split(input, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		// RGBL carries a luminance field that is accepted but unused.
		if len(parts) == 3 || len(parts) == 4 {
			return parseDecimal(text, parts[:3])
		}
	}

	if len(input) == 6 && isHexDigits(input) {
		return parseHex(text, input)
	}

	return colorblind.RGB{}, &ParseError{
		Input:  text,
		Reason: "invalid color format: use HEX (#FF0000), RGB (255,0,0), or RGBL (255,0,0,128)",
	}
}

// MustParse is like Parse but panics on error. Intended for constants in
// tests and defaults.
func MustParse(text string) colorblind.RGB {
	c, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("colorparse: MustParse(%q): %v", text, err))
	}
	return c
}

func parseHex(text, digits string) (colorblind.RGB, error) {
	if len(digits) != 6 {
		return colorblind.RGB{}, &ParseError{
			Input:  text,
			Reason: "hex color must be 6 characters (e.g., #FF0000)",
		}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return colorblind.RGB{}, &ParseError{
				Input:  text,
				Reason: fmt.Sprintf("invalid hex value for %s channel", channelNames[i]),
			}
		}
		ch[i] = uint8(v)
	}

	return colorblind.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseDecimal(text string, fields []string) (colorblind.RGB, error) {
	var ch [3]uint8
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return colorblind.RGB{}, &ParseError{
				Input:  text,
				Reason: fmt.Sprintf("invalid %s channel value: '%s'. Must be 0-255", channelNames[i], field),
			}
		}
		ch[i] = uint8(v)
	}
	return colorblind.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
