package cadence

import "math"

const (
	// maxFrameDelta caps the dt fed into decay interpolation so a frame-rate
	// stall doesn't read as a near-instant jump to target.
	maxFrameDelta = 0.1

	// floatSnapEpsilon ends a float decay once the remaining gap is
	// imperceptible, avoiding an infinite asymptotic tail.
	floatSnapEpsilon = 0.001

	// colorSnapEpsilon ends a channel decay once it is within two steps of
	// target; 8-bit channels jitter visibly below that.
	colorSnapEpsilon = 2
)

// Manager owns the animation state of one target: the registry of running
// [Instance]s plus the persisted state behind [Manager.AnimatedFloat] and
// [Manager.AnimatedColor]. The host loop calls [Manager.Update] once per
// frame, before reading styles for rendering.
//
// Managers are single-threaded, like everything in cadence.
type Manager struct {
	target Target
	active []*Instance
	floats map[*Property[float64]]float64
	colors map[*Property[Color]]Color
}

// NewManager creates a manager bound to target. A target keeps one manager
// for its whole lifetime.
func NewManager(target Target) *Manager {
	return &Manager{
		target: target,
		floats: make(map[*Property[float64]]float64),
		colors: make(map[*Property[Color]]Color),
	}
}

// Animate returns a fresh [Builder] bound to the manager's target.
func (m *Manager) Animate() *Builder {
	return &Builder{
		manager:   m,
		target:    m.target,
		timelines: make(map[AnyProperty]track),
	}
}

// start registers a new instance, superseding older ones: any active
// instance animating one of the same properties loses those timelines, so at
// most one instance writes a given property. An older instance stripped of
// all timelines stays only for its callbacks; with none left it is cancelled
// and unregistered on the next Update.
func (m *Manager) start(in *Instance) {
	for _, old := range m.active {
		for _, tr := range in.tracks {
			old.dropTrack(tr.property())
		}
		if len(old.tracks) == 0 && len(old.callbacks) == 0 {
			old.done = true
		}
	}
	m.active = append(m.active, in)
}

// Update advances every active instance by dt seconds and discards the ones
// that finished. The pass length is snapshotted up front: callbacks may start
// new animations during this call, and those begin advancing next frame.
func (m *Manager) Update(dt float64) {
	count := len(m.active)
	n := 0
	for i := 0; i < count; i++ {
		in := m.active[i]
		if !in.Update(dt) {
			m.active[n] = in
			n++
		}
	}
	// Keep instances registered by callbacks mid-pass.
	for i := count; i < len(m.active); i++ {
		m.active[n] = m.active[i]
		n++
	}
	for i := n; i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = m.active[:n]
}

// ActiveCount returns the number of running instances. Cancelled instances
// awaiting removal by the next Update are not counted.
func (m *Manager) ActiveCount() int {
	n := 0
	for _, in := range m.active {
		if !in.done {
			n++
		}
	}
	return n
}

// Stop cancels any running animation of property p. The property keeps its
// last written value. Safe to call from animation callbacks; cancelled
// instances are unregistered on the next Update.
func (m *Manager) Stop(p AnyProperty) {
	for _, in := range m.active {
		in.dropTrack(p)
		if len(in.tracks) == 0 && len(in.callbacks) == 0 {
			in.done = true
		}
	}
}

// StopAll cancels every running animation. Properties keep their last
// written values; no completion callbacks fire.
func (m *Manager) StopAll() {
	for _, in := range m.active {
		in.done = true
	}
}

// AnimatedFloat converges the stored value of p toward target with
// exponential decay and returns the new value. speed controls convergence
// rate (higher is faster); dt is this frame's delta in seconds. The first
// call for a property starts at target, so nothing animates on first paint.
// A NaN target is defended to 0.
func (m *Manager) AnimatedFloat(p *Property[float64], target, speed, dt float64) float64 {
	if math.IsNaN(target) {
		target = 0
	}
	cur, ok := m.floats[p]
	if !ok || math.IsNaN(cur) {
		cur = target
	}
	v := cur + (target-cur)*decayFactor(speed, dt)
	if math.Abs(target-v) < floatSnapEpsilon {
		v = target
	}
	m.floats[p] = v
	return v
}

// AnimatedColor is AnimatedFloat for packed ARGB colors: each channel decays
// toward the target channel independently and snaps once within
// colorSnapEpsilon.
func (m *Manager) AnimatedColor(p *Property[Color], target Color, speed, dt float64) Color {
	cur, ok := m.colors[p]
	if !ok {
		cur = target
	}
	f := decayFactor(speed, dt)
	v := ARGB(
		decayChannel(cur.A(), target.A(), f),
		decayChannel(cur.R(), target.R(), f),
		decayChannel(cur.G(), target.G(), f),
		decayChannel(cur.B(), target.B(), f),
	)
	m.colors[p] = v
	return v
}

// SetFloat seeds or overwrites the decay state of p, bypassing interpolation.
// Useful when a widget resets and the next AnimatedFloat call must not ease
// from the stale value.
func (m *Manager) SetFloat(p *Property[float64], v float64) {
	m.floats[p] = v
}

// SetColor seeds or overwrites the decay state of p.
func (m *Manager) SetColor(p *Property[Color], v Color) {
	m.colors[p] = v
}

// decayFactor converts speed and dt into a blend factor in [0, 1] using
// frame-rate-independent exponential smoothing.
func decayFactor(speed, dt float64) float64 {
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	f := 1 - math.Exp(-speed*dt)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// decayChannel moves one 8-bit channel toward target by factor f. Rounding
// would stall a slow decay two or three steps short of target, so any
// non-snapped move advances at least one step.
func decayChannel(cur, target uint8, f float64) uint8 {
	d := int(target) - int(cur)
	if d > -colorSnapEpsilon && d < colorSnapEpsilon {
		return target
	}
	step := int(math.Round(float64(d) * f))
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	v := int(cur) + step
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
