// Package cadence is a retained-mode keyframe animation engine for
// frame-driven UIs and games.
//
// Cadence animates named style properties (floats, packed ARGB colors,
// booleans) on arbitrary targets. It has no clock of its own: the host loop
// feeds it a frame delta once per frame, which makes every animation
// deterministic and replayable.
//
// # Quick start
//
// A target is anything with a style store. Give it a [Manager], build an
// animation fluently, and drive the manager from your update loop:
//
//	var alpha = cadence.NewProperty("alpha", 1.0)
//
//	type widget struct{ styles cadence.Styles }
//
//	func (w *widget) Styles() *cadence.Styles { return &w.styles }
//
//	w := &widget{}
//	m := cadence.NewManager(w)
//
//	m.Animate().
//		Float(0.3, alpha, 0.0, ease.OutQuad).
//		At(0.3, func() { log.Println("faded out") }).
//		Start()
//
//	// each frame:
//	m.Update(dt)
//	a := cadence.Get(&w.styles, alpha)
//
// # Timelines and auto-snapshot
//
// Each animated property gets a [Timeline] of keyframes. If a timeline has no
// keyframe at time zero when [Builder.Start] is called, the target's current
// live value is snapshotted in as the starting keyframe, so interrupting an
// in-flight animation never pops visually.
//
// Easing curves come from [gween]'s ease package and are applied per keyframe:
// each keyframe's curve shapes the segment leading into it.
//
// # Property smoothing
//
// For continuous transitions (hover tint, focus glow) a timeline is overkill.
// [Manager.AnimatedFloat] and [Manager.AnimatedColor] converge the stored
// value toward a target with frame-rate-independent exponential decay:
//
//	tint := m.AnimatedColor(hoverTint, target, 12, dt)
//
// # Scope
//
// Cadence is single-threaded: all state advances inside [Manager.Update] on
// the caller's frame thread. It renders nothing; see examples/ for runnable
// [Ebitengine] demos that draw what cadence animates.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package cadence
