package motion

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestScopeDisposeAllIdempotent(t *testing.T) {
	s := newTestStage()
	sink := &recordingSink{}
	s.SetEventSink(sink)
	sc := s.BeginView("home")
	sc.RegisterTrigger(NewElement("a", 0, 1000, 10, 10), Trigger{Animation: fadeIn(1)})

	sc.DisposeAll()
	sc.DisposeAll()

	if !sc.Disposed() || sc.Len() != 0 {
		t.Error("scope not disposed")
	}
	if sink.count(EventScopeDisposed) != 1 {
		t.Errorf("EventScopeDisposed emitted %d times, want 1", sink.count(EventScopeDisposed))
	}
	if len(s.Scopes()) != 0 {
		t.Errorf("Scopes = %d, want 0", len(s.Scopes()))
	}
}

func TestScopeNoCallbacksAfterDispose(t *testing.T) {
	s := NewStage(StageConfig{Width: 1000, Height: 800})
	sc := s.BeginView("home")

	var calls int
	count := func() { calls++ }
	sc.RegisterTrigger(NewElement("card", 0, 3000, 100, 100), Trigger{
		Animation: fadeIn(1),
		OnEnter:   count,
	})
	sc.PinSection(NewElement("o", 0, 1000, 1000, 800), NewElement("i", 0, 1000, 3000, 800),
		PinOptions{OnToggle: func(bool) { count() }})
	btn := NewElement("btn", 0, 0, 100, 100)
	sc.AttachMagnetic(btn, 0.2)
	sc.OnScroll(func(Viewport) { count() })
	sc.OnResize(func(Viewport) { count() })
	sc.OnFrame(func(float32) { count() })
	sc.Animate(NewElement("spin", 0, 0, 1, 1), AnimationSpec{
		To:       map[Property]float64{PropRotation: 360},
		Duration: 0.2,
		TweenOptions: TweenOptions{
			OnComplete: count,
		},
	})

	sc.DisposeAll()

	// Replay a full interaction: pointer, resize, scroll through everything.
	s.PointerMove(50, 50)
	s.Resize(1200, 900)
	for y := 0.0; y <= 4000; y += 200 {
		s.Scroll(y)
		s.Update(0.1)
	}
	s.OnViewportChange()
	s.PointerLeave()
	s.Update(0.1)

	if calls != 0 {
		t.Errorf("%d callbacks ran after DisposeAll", calls)
	}
	if s.Engine().Active() != 0 {
		t.Errorf("Active tweens = %d, want 0", s.Engine().Active())
	}
	if btn.Property(PropX) != 0 || btn.Property(PropY) != 0 {
		t.Error("pointer target not at rest after dispose")
	}
}

func TestScopeDisposeRestoresTargets(t *testing.T) {
	s := NewStage(StageConfig{Width: 1000, Height: 800})
	sc := s.BeginView("home")
	outer := NewElement("o", 0, 1000, 1000, 800)
	inner := NewElement("i", 0, 1000, 3000, 800)
	sc.PinSection(outer, inner, PinOptions{})
	card := NewElement("card", 0, 2000, 200, 200)
	sc.AttachTilt(card, 15)

	s.Scroll(2000)
	s.PointerMove(10, 10)
	s.Update(0.1)
	if inner.Property(PropPinX) == 0 || card.Property(PropRotationX) == 0 {
		t.Fatal("setup did not move the targets")
	}

	sc.DisposeAll()
	if !outer.AtRest() || !inner.AtRest() || !card.AtRest() {
		t.Error("targets not at rest after DisposeAll")
	}
}

func TestScopeDisposeLeavesOtherScopes(t *testing.T) {
	s := newTestStage()
	a := s.BeginView("a")
	b := s.BeginView("b")
	ea := NewElement("a", 0, 0, 1, 1)
	eb := NewElement("b", 0, 0, 1, 1)
	spec := AnimationSpec{To: map[Property]float64{PropX: 100}, Duration: 1,
		TweenOptions: TweenOptions{Ease: ease.Linear}}
	ta := a.Animate(ea, spec)
	tb := b.Animate(eb, spec)
	frames := 0
	b.OnFrame(func(float32) { frames++ })

	a.DisposeAll()
	s.Update(0.5)

	if !ta.Cancelled() {
		t.Error("disposed scope's tween still running")
	}
	if tb.Done() || frames != 1 {
		t.Error("other scope was affected")
	}
	if len(s.Scopes()) != 1 || s.Scopes()[0] != b {
		t.Error("Scopes should list only the live scope")
	}
}

func TestScopeIgnoresNilTargets(t *testing.T) {
	s := newTestStage()
	sc := s.BeginView("v")
	var nilEl *Element

	if sc.RegisterTrigger(nil, Trigger{}) != nil ||
		sc.RegisterTrigger(nilEl, Trigger{}) != nil ||
		sc.PinSection(nil, NewElement("i", 0, 0, 1, 1), PinOptions{}) != nil ||
		sc.PinSection(NewElement("o", 0, 0, 1, 1), nilEl, PinOptions{}) != nil ||
		sc.AttachMagnetic(nil, 0.2) != nil ||
		sc.AttachTilt(nilEl, 10) != nil ||
		sc.Animate(nil, AnimationSpec{}) != nil ||
		sc.AnimateFrom(nilEl, AnimationSpec{}) != nil {
		t.Error("nil target registration should return nil")
	}
	if sc.Len() != 0 {
		t.Errorf("Len = %d, want 0", sc.Len())
	}
	s.Update(0.1)
}

func TestScopeDisposedRejectsRegistration(t *testing.T) {
	s := newTestStage()
	sc := s.BeginView("v")
	sc.DisposeAll()

	el := NewElement("el", 0, 0, 10, 10)
	if sc.RegisterTrigger(el, Trigger{Animation: fadeIn(1)}) != nil {
		t.Error("disposed scope accepted a trigger")
	}
	if sc.AttachMagnetic(el, 0.2) != nil {
		t.Error("disposed scope accepted an effect")
	}
	if h := sc.OnFrame(func(float32) {}); h.reg != nil {
		t.Error("disposed scope accepted a listener")
	}
	if !el.AtRest() {
		t.Error("disposed scope wrote to the target")
	}
}

func TestNilScope(t *testing.T) {
	var sc *Scope
	sc.DisposeAll()
	if sc.Name() != "" || !sc.Disposed() || sc.Len() != 0 {
		t.Error("nil scope accessors")
	}
	if sc.RegisterTrigger(NewElement("el", 0, 0, 1, 1), Trigger{}) != nil {
		t.Error("nil scope registered a trigger")
	}
	sc.OnScroll(func(Viewport) {}).Remove()
}

func TestScopeAnimateFrom(t *testing.T) {
	s := newTestStage()
	el := NewElement("hero", 0, 0, 100, 100)
	s.BeginView("v").AnimateFrom(el, AnimationSpec{
		From:         map[Property]float64{PropAlpha: 0, PropY: 100},
		Duration:     1,
		TweenOptions: TweenOptions{Ease: ease.Linear},
	})
	if el.Property(PropAlpha) != 0 || el.Property(PropY) != 100 {
		t.Error("AnimateFrom should apply From values immediately")
	}
	s.Update(0.5)
	s.Update(0.5)
	if el.Property(PropAlpha) != 1 || el.Property(PropY) != 0 {
		t.Errorf("end = alpha %v y %v, want 1, 0", el.Property(PropAlpha), el.Property(PropY))
	}
}
