package cadence

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Keyframe anchors a property's value at a point in time. Ease shapes the
// segment leading into this keyframe from the previous one.
type Keyframe[T Animatable] struct {
	Time  float64
	Value T
	Ease  ease.TweenFunc
}

// Timeline is the ordered keyframe list for exactly one property. ValueAt is
// a pure function of the keyframe list and is safe to call every frame with
// arbitrary times, including times outside the keyframe range.
type Timeline[T Animatable] struct {
	prop   *Property[T]
	frames []Keyframe[T]
}

// NewTimeline creates an empty timeline bound to p.
func NewTimeline[T Animatable](p *Property[T]) *Timeline[T] {
	return &Timeline[T]{prop: p}
}

// AddKeyframe inserts a keyframe, keeping the list ordered by time. Adding at
// a time that already has a keyframe replaces that keyframe's value and
// easing. Negative times clamp to zero.
func (tl *Timeline[T]) AddKeyframe(time float64, v T, fn ease.TweenFunc) {
	if time < 0 {
		time = 0
	}
	i := sort.Search(len(tl.frames), func(i int) bool {
		return tl.frames[i].Time >= time
	})
	kf := Keyframe[T]{Time: time, Value: v, Ease: fn}
	if i < len(tl.frames) && tl.frames[i].Time == time {
		tl.frames[i] = kf
		return
	}
	tl.frames = append(tl.frames, Keyframe[T]{})
	copy(tl.frames[i+1:], tl.frames[i:])
	tl.frames[i] = kf
}

// HasKeyframeAt reports whether a keyframe exists at exactly the given time.
func (tl *Timeline[T]) HasKeyframeAt(time float64) bool {
	i := sort.Search(len(tl.frames), func(i int) bool {
		return tl.frames[i].Time >= time
	})
	return i < len(tl.frames) && tl.frames[i].Time == time
}

// LastKeyframeTime returns the time of the final keyframe, or 0 if the
// timeline is empty.
func (tl *Timeline[T]) LastKeyframeTime() float64 {
	if len(tl.frames) == 0 {
		return 0
	}
	return tl.frames[len(tl.frames)-1].Time
}

// ValueAt evaluates the timeline at time t. Before the first keyframe it
// returns the first keyframe's value and past the last it returns the last's
// (no extrapolation). An empty timeline returns the property default.
func (tl *Timeline[T]) ValueAt(t float64) T {
	if len(tl.frames) == 0 {
		return tl.prop.def
	}
	if t <= tl.frames[0].Time {
		return tl.frames[0].Value
	}
	last := tl.frames[len(tl.frames)-1]
	if t >= last.Time {
		return last.Value
	}
	// First keyframe strictly after t; its predecessor brackets from below.
	i := sort.Search(len(tl.frames), func(i int) bool {
		return tl.frames[i].Time > t
	})
	ka, kb := tl.frames[i-1], tl.frames[i]
	span := kb.Time - ka.Time
	p := 1.0 // coincident keyframe times: jump to the later keyframe
	if span > 0 {
		p = (t - ka.Time) / span
	}
	return lerpValue(ka.Value, kb.Value, evalEase(kb.Ease, p))
}

// evalEase maps normalized progress through an easing curve. gween curves
// take (t, begin, change, duration); evaluating at begin=0, change=1,
// duration=1 yields the normalized form. A nil curve is linear.
func evalEase(fn ease.TweenFunc, p float64) float64 {
	if fn == nil {
		return p
	}
	return float64(fn(float32(p), 0, 1, 1))
}

// lerpValue blends two values at eased progress e. Floats blend linearly,
// colors per channel, and booleans step to the later value once e crosses
// the midpoint.
func lerpValue[T Animatable](from, to T, e float64) T {
	switch f := any(from).(type) {
	case float64:
		t := any(to).(float64)
		return any(f + (t-f)*e).(T)
	case Color:
		t := any(to).(Color)
		return any(lerpColor(f, t, e)).(T)
	case bool:
		if e < 0.5 {
			return from
		}
		return to
	}
	return from
}
