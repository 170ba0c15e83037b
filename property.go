package cadence

// Animatable is the closed set of value kinds cadence can store and animate.
// Floats and colors interpolate; booleans step (see Timeline.ValueAt).
type Animatable interface {
	float64 | Color | bool
}

// Property is a typed handle naming one styleable property together with its
// default value. Handles are compared by identity: declare each property once
// as a package-level variable and share the pointer.
//
//	var alpha = cadence.NewProperty("alpha", 1.0)
type Property[T Animatable] struct {
	name string
	def  T
}

// NewProperty creates a property handle with the given name and default.
func NewProperty[T Animatable](name string, def T) *Property[T] {
	return &Property[T]{name: name, def: def}
}

// Name returns the property's name, for debugging and diagnostics only.
func (p *Property[T]) Name() string { return p.name }

// Default returns the value a target holds before anything is set.
func (p *Property[T]) Default() T { return p.def }

// AnyProperty is the type-erased view of a *Property[T]. It remains
// identity-comparable and is used as a map key wherever properties of mixed
// kinds share one container.
type AnyProperty interface {
	Name() string
}

// Styles is a target's live style-value store. The zero value is ready to
// use. Reads of unset properties return the property's default.
//
// Access is through the package-level generic [Get] and [Set] so that a
// property's declared type constrains every value stored under it.
type Styles struct {
	values map[AnyProperty]any
}

// Get returns the live value of p, or p's default if never set.
func Get[T Animatable](s *Styles, p *Property[T]) T {
	if v, ok := s.values[p]; ok {
		return v.(T)
	}
	return p.def
}

// Set writes the live value of p.
func Set[T Animatable](s *Styles, p *Property[T], v T) {
	if s.values == nil {
		s.values = make(map[AnyProperty]any)
	}
	s.values[p] = v
}

// Target is anything cadence can animate: it exposes a live style store that
// animations read at start (auto-snapshot) and write every frame.
//
// A target may additionally implement IsDisposed() bool; a running animation
// stops on its next update once its target reports disposed.
type Target interface {
	Styles() *Styles
}

type disposable interface {
	IsDisposed() bool
}
