package cadence

import "github.com/tanema/gween/ease"

// Canned animations in the spirit of one-line tween constructors: each picks
// sensible easing and wraps a Builder chain. All of them auto-snapshot their
// starting values, so they compose with whatever is already running.

// FadeTo eases p from its current value to the given one.
func FadeTo(m *Manager, p *Property[float64], to, duration float64) *Instance {
	return m.Animate().
		Float(duration, p, to, ease.OutQuad).
		Start()
}

// SlideTo eases a coordinate pair from its current position to (toX, toY).
func SlideTo(m *Manager, x, y *Property[float64], toX, toY, duration float64) *Instance {
	return m.Animate().
		Float(duration, x, toX, ease.OutCubic).
		Float(duration, y, toY, ease.OutCubic).
		Start()
}

// TintTo eases a color property from its current color to the given one.
func TintTo(m *Manager, p *Property[Color], to Color, duration float64) *Instance {
	return m.Animate().
		Color(duration, p, to, ease.OutQuad).
		Start()
}

// Pulse loops p between lo and hi with one full cycle per period.
func Pulse(m *Manager, p *Property[float64], lo, hi, period float64) *Instance {
	return m.Animate().
		FromFloat(p, lo).
		Float(period/2, p, hi, ease.InOutQuad).
		Float(period, p, lo, ease.InOutQuad).
		Loop().
		Start()
}

// Blink loops a boolean property, flipping it off and back on once per
// period. Boolean segments step at their midpoint, so the flips land at the
// quarter points of the cycle.
func Blink(m *Manager, p *Property[bool], period float64) *Instance {
	return m.Animate().
		Bool(0, p, true).
		Bool(period/2, p, false).
		Bool(period, p, true).
		Loop().
		Start()
}
