package cadence

import (
	"image/color"
	"math"
)

// Color is a packed 32-bit ARGB color (A<<24 | R<<16 | G<<8 | B). Packed
// integers are the interchange format with the host style system; convert to
// [color.NRGBA] at the render boundary.
type Color uint32

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB packs three 8-bit channels into a fully opaque Color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// NRGBA converts to a non-premultiplied [color.NRGBA] for rendering.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// lerpColor blends each channel independently at eased progress e and
// repacks. Channels clamp to [0, 255] because back/elastic curves overshoot
// the [0, 1] progress range.
func lerpColor(from, to Color, e float64) Color {
	return ARGB(
		lerpChannel(from.A(), to.A(), e),
		lerpChannel(from.R(), to.R(), e),
		lerpChannel(from.G(), to.G(), e),
		lerpChannel(from.B(), to.B(), e),
	)
}

func lerpChannel(from, to uint8, e float64) uint8 {
	v := math.Round(float64(from) + (float64(to)-float64(from))*e)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
