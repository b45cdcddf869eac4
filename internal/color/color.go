// Package color parses hex color codes posted in chat and checks them for
// legibility against Discord's dark theme.
package color

import (
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// pattern matches an entire #RRGGBB string. Partial matches are not accepted.
var pattern = regexp.MustCompile(`^#([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)

// Value is a 24-bit sRGB color.
type Value struct {
	R, G, B uint8
}

// Background is the dark theme's message background.
var Background = Value{0x36, 0x39, 0x3E}

// Parse parses text as a #RRGGBB color. The whole text must be the color;
// surrounding whitespace or other characters make it invalid.
func Parse(text string) (Value, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return Value{}, false
	}

	var v Value
	for i, dst := range []*uint8{&v.R, &v.G, &v.B} {
		u, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return Value{}, false
		}
		*dst = uint8(u)
	}

	return v, true
}

// IsRoleName returns true if name looks like a color role's name.
func IsRoleName(name string) bool {
	return pattern.MatchString(name)
}

// FromUint32 converts a 0xRRGGBB integer to a Value. The upper byte is
// ignored.
func FromUint32(u uint32) Value {
	return Value{
		R: uint8(u >> 16),
		G: uint8(u >> 8),
		B: uint8(u),
	}
}

// Uint32 returns the color as 0xRRGGBB.
func (v Value) Uint32() uint32 {
	return uint32(v.R)<<16 | uint32(v.G)<<8 | uint32(v.B)
}

// Colorful converts the value to a go-colorful color.
func (v Value) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(v.R) / 255,
		G: float64(v.G) / 255,
		B: float64(v.B) / 255,
	}
}

// String returns the canonical lowercase #rrggbb form, which is also the name
// of the color's role.
func (v Value) String() string {
	return v.Colorful().Hex()
}
