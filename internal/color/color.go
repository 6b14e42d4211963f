// Package color wraps go-colorful with the small surface the palette engine
// needs: coercing raw literals and rendering a canonical CSS hex string.
package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque sRGB color value.
type Color struct {
	c colorful.Color
}

// Hex parses a CSS hex literal ("#rrggbb" or "#rgb") into a Color.
func Hex(s string) (Color, error) {
	// colorful.Hex scans leniently; reject anything that is not exactly
	// the 3- or 6-digit form.
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{c: c}, nil
}

// MustHex is Hex for compile-time literals; it panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB builds a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{c: colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}}
}

// CSSHex renders the canonical lowercase "#rrggbb" form.
func (c Color) CSSHex() string {
	return c.c.Hex()
}

func (c Color) String() string {
	return c.CSSHex()
}

// Luminance returns the relative luminance (the Y of CIE XYZ), used by the
// preview renderer to pick a readable label color.
func (c Color) Luminance() float64 {
	_, y, _ := c.c.Xyz()
	return y
}

// FromLiteral coerces a raw palette value into a Color.
//
// The second return value reports whether v was a color literal at all: a
// "#..." string or an [r, g, b] sequence is a literal (possibly a malformed
// one), while any other string is not — it names another palette entry and
// is the caller's to treat as an alias. Values of any other shape yield an
// error.
func FromLiteral(v any) (Color, bool, error) {
	switch val := v.(type) {
	case string:
		if !strings.HasPrefix(val, "#") {
			return Color{}, false, nil
		}
		c, err := Hex(val)
		return c, true, err
	case []any:
		c, err := fromChannels(val)
		return c, true, err
	default:
		return Color{}, true, fmt.Errorf("unsupported color literal of type %T", v)
	}
}

func fromChannels(vals []any) (Color, error) {
	if len(vals) != 3 {
		return Color{}, fmt.Errorf("rgb literal needs 3 channels, got %d", len(vals))
	}
	var ch [3]uint8
	for i, v := range vals {
		n, ok := v.(int)
		if !ok || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("rgb channel %d out of range: %v", i, v)
		}
		ch[i] = uint8(n)
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}
