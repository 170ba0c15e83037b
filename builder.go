package cadence

import (
	"github.com/tanema/gween/ease"
)

// Builder accumulates keyframes and callbacks for one animation and registers
// the finished [Instance] with the target's manager on [Builder.Start].
// Obtain one from [Manager.Animate]. A builder is single-use; reusing it
// after Start is undefined.
type Builder struct {
	manager    *Manager
	target     Target
	timelines  map[AnyProperty]track
	order      []track
	callbacks  []Callback
	loop       bool
	onComplete func()
}

// timelineFor returns the builder's timeline for p, creating it on first use.
func timelineFor[T Animatable](b *Builder, p *Property[T]) *Timeline[T] {
	if tr, ok := b.timelines[p]; ok {
		return tr.(*Timeline[T])
	}
	tl := NewTimeline(p)
	b.timelines[p] = tl
	b.order = append(b.order, tl)
	return tl
}

// Float adds a float keyframe: p reaches v at the given time, easing into it
// with fn.
func (b *Builder) Float(time float64, p *Property[float64], v float64, fn ease.TweenFunc) *Builder {
	timelineFor(b, p).AddKeyframe(time, v, fn)
	return b
}

// Color adds a color keyframe: p reaches v at the given time, each ARGB
// channel easing into it with fn.
func (b *Builder) Color(time float64, p *Property[Color], v Color, fn ease.TweenFunc) *Builder {
	timelineFor(b, p).AddKeyframe(time, v, fn)
	return b
}

// Bool adds a boolean keyframe. Booleans don't interpolate: the value flips
// to v at the midpoint of the segment leading into this keyframe.
func (b *Builder) Bool(time float64, p *Property[bool], v bool) *Builder {
	timelineFor(b, p).AddKeyframe(time, v, ease.Linear)
	return b
}

// FromFloat pins p's starting value: shorthand for a linear keyframe at time
// zero. Without it, Start snapshots the target's live value instead.
func (b *Builder) FromFloat(p *Property[float64], v float64) *Builder {
	return b.Float(0, p, v, ease.Linear)
}

// FromColor pins p's starting color: shorthand for a linear keyframe at time
// zero.
func (b *Builder) FromColor(p *Property[Color], v Color) *Builder {
	return b.Color(0, p, v, ease.Linear)
}

// At schedules action to fire once the animation's elapsed time reaches time.
func (b *Builder) At(time float64, action func()) *Builder {
	b.callbacks = append(b.callbacks, Callback{Time: time, Action: action})
	return b
}

// Loop makes the animation repeat until its target is disposed or the
// manager is stopped; a looping instance never reports finished.
func (b *Builder) Loop() *Builder {
	b.loop = true
	return b
}

// OnComplete sets a function invoked when a non-looping animation finishes.
func (b *Builder) OnComplete(fn func()) *Builder {
	b.onComplete = fn
	return b
}

// Start finalizes the animation and registers it with the manager. Every
// timeline missing a time-zero keyframe gets one snapshotted from the
// target's current live value, at this moment — deliberately deferred to
// Start so the snapshot reflects writes made after the builder was created.
// Returns the running instance.
func (b *Builder) Start() *Instance {
	s := b.target.Styles()
	dur := minDuration
	for _, tr := range b.order {
		tr.snapshot(s)
		if t := tr.lastTime(); t > dur {
			dur = t
		}
	}
	in := &Instance{
		target:     b.target,
		tracks:     b.order,
		callbacks:  b.callbacks,
		loop:       b.loop,
		onComplete: b.onComplete,
		duration:   dur,
		prev:       -1,
	}
	b.manager.start(in)
	return in
}
