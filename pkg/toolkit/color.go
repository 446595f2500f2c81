package toolkit

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 returns the components as bytes.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.RGBA8()
	a = uint32(a8) * 0x101
	r = uint32(r8) * 0x101 * a / 0xFFFF
	g = uint32(g8) * 0x101 * a / 0xFFFF
	b = uint32(b8) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Common colors.
const (
	ColorBlack     = Color(0xFF000000)
	ColorWhite     = Color(0xFFFFFFFF)
	ColorGray      = Color(0xFFC0C0C0)
	ColorSelection = Color(0xFF0F3F8F)
)

// Defaults for newly constructed widgets.
const (
	DefaultColor          = ColorGray
	DefaultLabelColor     = ColorBlack
	DefaultSelectionColor = ColorSelection
	DefaultLabelSize      = 14
	DefaultTextSize       = 14
)
