package cadence

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestManagerRemovesFinishedInstances(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)

	m.Animate().FromFloat(propWidth, 0).Float(0.5, propWidth, 1, ease.Linear).Start()
	m.Animate().FromFloat(propAlpha, 1).Float(1.5, propAlpha, 0, ease.Linear).Start()

	if m.ActiveCount() != 2 {
		t.Fatalf("active count = %d, want 2", m.ActiveCount())
	}

	m.Update(1.0) // first finishes, second survives
	if m.ActiveCount() != 1 {
		t.Errorf("active count = %d after partial completion, want 1", m.ActiveCount())
	}

	m.Update(1.0)
	if m.ActiveCount() != 0 {
		t.Errorf("active count = %d after all complete, want 0", m.ActiveCount())
	}
}

func TestManagerSupersedesOverlappingProperty(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)

	m.Animate().
		FromFloat(propWidth, 0).
		Float(10, propWidth, 1000, ease.Linear).
		Start()

	// A second animation on the same property strips it from the first
	// instance; the stale writer must not fight the new one.
	m.Animate().
		FromFloat(propWidth, 0).
		Float(1, propWidth, 10, ease.Linear).
		Start()

	if m.ActiveCount() != 1 {
		t.Fatalf("active count = %d, want 1 (old instance fully superseded)", m.ActiveCount())
	}

	m.Update(0.5)
	if got := Get(&w.styles, propWidth); got != 5.0 {
		t.Errorf("width = %f, want 5.0 from the new animation only", got)
	}
}

func TestManagerSupersedeKeepsOtherProperties(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)

	m.Animate().
		FromFloat(propWidth, 0).
		Float(1, propWidth, 10, ease.Linear).
		FromFloat(propAlpha, 0).
		Float(1, propAlpha, 1, ease.Linear).
		Start()

	m.Animate().
		FromFloat(propWidth, 0).
		Float(1, propWidth, 100, ease.Linear).
		Start()

	if m.ActiveCount() != 2 {
		t.Fatalf("active count = %d, want 2 (old instance keeps its alpha track)", m.ActiveCount())
	}

	m.Update(0.5)
	if got := Get(&w.styles, propWidth); got != 50.0 {
		t.Errorf("width = %f, want 50.0 from the superseding animation", got)
	}
	if got := Get(&w.styles, propAlpha); got != 0.5 {
		t.Errorf("alpha = %f, want 0.5 from the surviving track", got)
	}
}

func TestManagerStopProperty(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)

	m.Animate().FromFloat(propWidth, 0).Float(1, propWidth, 10, ease.Linear).Start()
	m.Update(0.5)

	m.Stop(propWidth)
	if m.ActiveCount() != 0 {
		t.Fatalf("active count = %d after Stop, want 0", m.ActiveCount())
	}

	m.Update(0.5)
	if got := Get(&w.styles, propWidth); got != 5.0 {
		t.Errorf("width = %f after Stop, want frozen 5.0", got)
	}
}

func TestManagerStopAll(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)

	completed := false
	m.Animate().FromFloat(propWidth, 0).Float(1, propWidth, 10, ease.Linear).
		OnComplete(func() { completed = true }).Start()
	m.Animate().FromFloat(propAlpha, 1).Float(1, propAlpha, 0, ease.Linear).Start()

	m.StopAll()

	if m.ActiveCount() != 0 {
		t.Errorf("active count = %d after StopAll, want 0", m.ActiveCount())
	}
	if completed {
		t.Error("StopAll must not fire completion callbacks")
	}
}

func TestManagerCallbackCanStartAnimation(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)

	m.Animate().
		FromFloat(propWidth, 0).
		Float(0.5, propWidth, 1, ease.Linear).
		OnComplete(func() {
			m.Animate().FromFloat(propAlpha, 1).Float(0.5, propAlpha, 0, ease.Linear).Start()
		}).
		Start()

	// Completing the first animation registers the second from inside Update;
	// that must not panic or corrupt the active list.
	m.Update(0.6)

	if m.ActiveCount() != 1 {
		t.Errorf("active count = %d, want the chained animation registered", m.ActiveCount())
	}
	for i := 0; i < 10; i++ {
		m.Update(0.1)
	}
	if got := Get(&w.styles, propAlpha); got != 0 {
		t.Errorf("alpha = %f, want chained animation to have run to 0", got)
	}
}

func TestAnimatedFloatConvergesAndSnaps(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)
	m.SetFloat(propWidth, 0)

	prev := 0.0
	frames := 0
	for ; frames < 200; frames++ {
		v := m.AnimatedFloat(propWidth, 100, 10, 0.1)
		if v == 100 {
			break
		}
		if v <= prev {
			t.Fatalf("frame %d: value %f did not strictly increase from %f", frames, v, prev)
		}
		prev = v
	}

	if frames == 200 {
		t.Fatal("AnimatedFloat never snapped to target within 200 frames")
	}
	// Snapped value must be exact, and stay exact.
	if v := m.AnimatedFloat(propWidth, 100, 10, 0.1); v != 100 {
		t.Errorf("value after snap = %f, want exactly 100", v)
	}
}

func TestAnimatedFloatFirstCallShowsTarget(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)

	// No stored state: the first frame must not animate from some default.
	if v := m.AnimatedFloat(propWidth, 77, 10, 0.016); v != 77 {
		t.Errorf("first call = %f, want target 77", v)
	}
}

func TestAnimatedFloatClampsFrameDelta(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)
	m.SetFloat(propX, 0)
	m.SetFloat(propY, 0)

	// A 5 second stall must behave exactly like the clamp maximum,
	// not jump to target.
	stalled := m.AnimatedFloat(propX, 100, 10, 5.0)
	clamped := m.AnimatedFloat(propY, 100, 10, maxFrameDelta)

	if stalled != clamped {
		t.Errorf("stalled frame = %f, clamped frame = %f, want equal", stalled, clamped)
	}
	if stalled == 100 {
		t.Error("stalled frame jumped straight to target")
	}
}

func TestAnimatedFloatNaNTargetDefendsToZero(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)
	m.SetFloat(propWidth, 50)

	v := m.AnimatedFloat(propWidth, math.NaN(), 10, 0.1)

	if math.IsNaN(v) {
		t.Fatal("NaN leaked out of AnimatedFloat")
	}
	if v >= 50 {
		t.Errorf("value = %f, want decay toward the 0 fallback", v)
	}
}

func TestAnimatedColorConvergesAndSnaps(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)
	m.SetColor(propTint, RGB(0, 0, 0))

	target := RGB(200, 100, 50)
	var v Color
	frames := 0
	for ; frames < 200; frames++ {
		v = m.AnimatedColor(propTint, target, 10, 0.016)
		if v == target {
			break
		}
	}

	if v != target {
		t.Fatalf("color never reached target within 200 frames, got %08X", uint32(v))
	}
	if frames == 0 {
		t.Error("color snapped immediately; expected gradual convergence")
	}
}

func TestAnimatedColorBlendsPerChannel(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)
	m.SetColor(propTint, ARGB(0, 0, 0, 0))

	v := m.AnimatedColor(propTint, ARGB(255, 255, 255, 255), 10, 0.07)

	// factor = 1-exp(-0.7) ~ 0.50; every channel lands mid-range.
	for name, ch := range map[string]uint8{"A": v.A(), "R": v.R(), "G": v.G(), "B": v.B()} {
		if ch < 100 || ch > 155 {
			t.Errorf("%s = %d, want mid-range after one half-life frame", name, ch)
		}
	}
}

func TestAnimatedFloatZeroAlloc(t *testing.T) {
	w := &testWidget{}
	m := NewManager(w)
	m.AnimatedFloat(propWidth, 100, 10, 0.016) // warm up the map entry

	result := testing.AllocsPerRun(100, func() {
		m.AnimatedFloat(propWidth, 100, 10, 0.016)
	})
	if result > 0 {
		t.Errorf("AnimatedFloat allocated %f times per run, want 0", result)
	}
}

func TestDecayFactorBounds(t *testing.T) {
	if f := decayFactor(10, 0); f != 0 {
		t.Errorf("decayFactor(10, 0) = %f, want 0", f)
	}
	if f := decayFactor(10, -1); f != 0 {
		t.Errorf("negative dt factor = %f, want 0", f)
	}
	if f := decayFactor(1e9, 0.1); f < 0 || f > 1 {
		t.Errorf("factor = %f, want within [0, 1]", f)
	}
}
