// Package mcolor provides the four-channel 8-bit color type shared by
// gradients, palettes and the rendered pixel buffer.
package mcolor

import (
	"fmt"
	"strconv"
)

// Color holds four 8-bit channels. The zero value is transparent black.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Lerp interpolates each channel of a and b using signed integer
// arithmetic so a descending channel value never underflows:
// lerp(a, b, av, bv, tv) = a + (b-a)*(tv-av)/(bv-av).
func Lerp(a, b Color, av, bv, tv int64) Color {
	if av == bv {
		return a
	}
	return Color{
		R: lerpChannel(a.R, b.R, av, bv, tv),
		G: lerpChannel(a.G, b.G, av, bv, tv),
		B: lerpChannel(a.B, b.B, av, bv, tv),
		A: lerpChannel(a.A, b.A, av, bv, tv),
	}
}

func lerpChannel(a, b uint8, av, bv, tv int64) uint8 {
	delta := int64(b) - int64(a)
	v := int64(a) + delta*(tv-av)/(bv-av)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// Mean returns the arithmetic, per-channel mean of a and b.
func Mean(a, b Color) Color {
	return Color{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: uint8((int(a.A) + int(b.A)) / 2),
	}
}

// ParseHex parses a "#rrggbb" string, forcing alpha to 255. Returns
// ok=false on any malformed input rather than panicking.
func ParseHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	r, errR := strconv.ParseUint(s[1:3], 16, 8)
	g, errG := strconv.ParseUint(s[3:5], 16, 8)
	b, errB := strconv.ParseUint(s[5:7], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return Color{}, false
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, true
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
