package cadence

import (
	"math"

	"github.com/tanema/gween/ease"
)

// minDuration floors every animation's duration so completion math never
// divides by zero and a zero-keyframe animation completes on its next update.
const minDuration = 0.001

// Callback is a timed action attached to an animation. It fires exactly once
// per pass, on the first update whose elapsed time reaches Time.
type Callback struct {
	Time   float64
	Action func()
}

// track is the type-erased view of a Timeline bound into an Instance.
type track interface {
	property() AnyProperty
	lastTime() float64
	apply(s *Styles, t float64)
	snapshot(s *Styles)
}

func (tl *Timeline[T]) property() AnyProperty { return tl.prop }

func (tl *Timeline[T]) lastTime() float64 { return tl.LastKeyframeTime() }

func (tl *Timeline[T]) apply(s *Styles, t float64) {
	Set(s, tl.prop, tl.ValueAt(t))
}

// snapshot back-fills a time-zero keyframe from the target's live value so an
// interrupted animation hands off without popping.
func (tl *Timeline[T]) snapshot(s *Styles) {
	if tl.HasKeyframeAt(0) {
		return
	}
	tl.AddKeyframe(0, Get(s, tl.prop), ease.Linear)
}

// Instance is one running animation: a set of property timelines plus timed
// callbacks advancing on a shared elapsed-time clock. Build instances with
// [Builder]; drive them through [Manager.Update].
type Instance struct {
	target     Target
	tracks     []track
	callbacks  []Callback
	loop       bool
	onComplete func()

	elapsed  float64
	prev     float64 // previous frame's elapsed time; negative before the first update so a time-zero callback fires
	duration float64
	done     bool
}

// Elapsed returns the instance's current position on its own clock.
func (in *Instance) Elapsed() float64 { return in.elapsed }

// Duration returns the animation's length: the latest keyframe time across
// all timelines, floored to a small epsilon.
func (in *Instance) Duration() float64 { return in.duration }

// Done reports whether the instance has finished and been discarded.
func (in *Instance) Done() bool { return in.done }

// Update advances the animation by dt seconds, writes every timeline's value
// into the target's styles, and fires callbacks that came due. It returns
// true once the animation is finished and must be discarded; looping
// instances never finish on their own.
func (in *Instance) Update(dt float64) bool {
	if in.done {
		return true
	}
	if d, ok := in.target.(disposable); ok && d.IsDisposed() {
		in.done = true
		return true
	}

	in.elapsed += dt
	s := in.target.Styles()
	for _, tr := range in.tracks {
		tr.apply(s, in.elapsed)
	}
	in.fire(in.prev, in.elapsed)

	if in.elapsed >= in.duration {
		if in.loop {
			// Wrap by modulo rather than resetting to zero: the overshoot
			// carries into the next pass so the cadence never drifts.
			in.elapsed = math.Mod(in.elapsed, in.duration)
			in.fire(0, in.elapsed)
			in.prev = in.elapsed
			return false
		}
		// Force the exact end state; the per-frame write above may have
		// landed past the final keyframe on an overshooting dt.
		for _, tr := range in.tracks {
			tr.apply(s, in.duration)
		}
		in.done = true
		if in.onComplete != nil {
			in.onComplete()
		}
		return true
	}

	in.prev = in.elapsed
	return false
}

// fire invokes every callback with lo < Time <= hi. Edge-triggered on the
// stored previous elapsed time, so varying frame deltas neither skip nor
// double-fire a callback.
func (in *Instance) fire(lo, hi float64) {
	for _, cb := range in.callbacks {
		if lo < cb.Time && cb.Time <= hi {
			cb.Action()
		}
	}
}

// animates reports whether the instance carries a timeline for p.
func (in *Instance) animates(p AnyProperty) bool {
	for _, tr := range in.tracks {
		if tr.property() == p {
			return true
		}
	}
	return false
}

// dropTrack removes the timeline for p, if present. Used by the manager to
// supersede an older instance when a new one starts animating the same
// property.
func (in *Instance) dropTrack(p AnyProperty) {
	for i, tr := range in.tracks {
		if tr.property() == p {
			in.tracks = append(in.tracks[:i], in.tracks[i+1:]...)
			return
		}
	}
}
