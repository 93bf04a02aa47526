package motion

import (
	"math"
	"math/rand/v2"
	"testing"
)

type portfolio struct {
	stage    *Stage
	hero     *Element
	sections []*Element
	projects []*Element
	skills   []*Element
	buttons  []*Element
	shapes   []*Element
	outer    *Element
	inner    *Element
	backdrop *Element
}

func newPortfolio() *portfolio {
	p := &portfolio{stage: NewStage(StageConfig{Width: 1000, Height: 800})}
	p.hero = NewElement("hero", 0, 200, 800, 200)
	for i := range 3 {
		p.sections = append(p.sections, NewElement("section", 0, 1000+float64(i)*150, 800, 100))
	}
	for i := range 4 {
		p.projects = append(p.projects, NewElement("project", float64(i)*220, 1600, 200, 200))
	}
	for i := range 5 {
		p.skills = append(p.skills, NewElement("skill", float64(i)*100, 2000, 80, 80))
	}
	p.buttons = []*Element{NewElement("cta", 100, 500, 160, 48)}
	p.shapes = []*Element{NewElement("shape", 0, 0, 40, 40), NewElement("shape", 0, 0, 40, 40)}
	p.outer = NewElement("horizontal", 0, 2400, 1000, 800)
	p.inner = NewElement("strip", 0, 2400, 3000, 800)
	p.backdrop = NewElement("backdrop", 0, 0, 1000, 800)
	return p
}

func targets(els []*Element) []Target {
	out := make([]Target, len(els))
	for i, e := range els {
		out[i] = e
	}
	return out
}

func (p *portfolio) mount() *Scope {
	return Choreography{
		Hero:       p.hero,
		Sections:   targets(p.sections),
		Projects:   targets(p.projects),
		Skills:     targets(p.skills),
		Magnetic:   targets(p.buttons),
		Floating:   targets(p.shapes),
		Horizontal: []HorizontalSection{{Outer: p.outer, Inner: p.inner}},
		Backdrop:   p.backdrop,
		Rand:       rand.New(rand.NewPCG(1, 2)),
	}.Mount(p.stage, "portfolio")
}

func (p *portfolio) run(seconds float64) {
	for t := 0.0; t < seconds; t += 1.0 / 60 {
		p.stage.Update(1.0 / 60)
	}
}

func TestChoreographyHeroIntro(t *testing.T) {
	p := newPortfolio()
	p.mount()
	if p.hero.Property(PropAlpha) != 0 || p.hero.Property(PropY) != 100 {
		t.Errorf("hero should start hidden: alpha=%v y=%v", p.hero.Property(PropAlpha), p.hero.Property(PropY))
	}
	p.run(1.6)
	if p.hero.Property(PropAlpha) != 1 || p.hero.Property(PropY) != 0 {
		t.Errorf("hero after intro: alpha=%v y=%v", p.hero.Property(PropAlpha), p.hero.Property(PropY))
	}
}

func TestChoreographyStaggeredReveal(t *testing.T) {
	p := newPortfolio()
	p.mount()
	for _, s := range p.sections {
		if s.Property(PropAlpha) != 0 {
			t.Fatal("offscreen sections should start hidden")
		}
	}

	p.stage.Scroll(700)
	p.stage.Update(0.05)
	first, second := p.sections[0], p.sections[1]
	if first.Property(PropAlpha) == 0 {
		t.Error("first section did not start revealing")
	}
	if second.Property(PropAlpha) != 0 {
		t.Error("second section should still be inside its stagger delay")
	}

	p.run(2)
	for i, s := range p.sections {
		if math.Abs(s.Property(PropAlpha)-1) > 1e-9 || math.Abs(s.Property(PropY)) > 1e-9 {
			t.Errorf("section %d not revealed: alpha=%v y=%v", i, s.Property(PropAlpha), s.Property(PropY))
		}
	}
}

func TestChoreographyProjectsTilt(t *testing.T) {
	p := newPortfolio()
	p.mount()
	p.stage.Scroll(1200)
	p.run(1.5)

	card := p.projects[0]
	p.stage.PointerMove(10, 1600-1200+10)
	p.run(0.6)
	if card.Property(PropRotationX) == 0 || card.Property(PropRotationY) == 0 {
		t.Error("project card did not tilt under the pointer")
	}
}

func TestChoreographyMagneticButton(t *testing.T) {
	p := newPortfolio()
	p.mount()
	p.stage.PointerMove(250, 520)
	p.run(0.6)
	btn := p.buttons[0]
	if btn.Property(PropX) <= 0 {
		t.Errorf("button X = %v, want pulled toward the pointer", btn.Property(PropX))
	}
}

func TestChoreographyFloatingShapes(t *testing.T) {
	p := newPortfolio()
	p.mount()
	owner := p.stage.Engine().Owner(p.shapes[1], PropX)
	if owner == nil {
		t.Fatal("floating shape has no tween")
	}
	if owner.duration != floatBaseDuration+floatStepDuration {
		t.Errorf("second shape duration = %v, want %v", owner.duration, floatBaseDuration+floatStepDuration)
	}
	p.run(1)
	if p.shapes[0].AtRest() {
		t.Error("floating shape did not move")
	}
}

func TestChoreographyPinAndBackdrop(t *testing.T) {
	p := newPortfolio()
	p.mount()

	p.stage.Scroll(3400)
	p.stage.Update(1.0 / 60)
	if math.Abs(p.inner.Property(PropPinX)+1000) > 1e-3 {
		t.Errorf("strip X = %v, want -1000", p.inner.Property(PropPinX))
	}

	p.stage.Scroll(1000)
	p.stage.Update(1.0 / 60)
	want := 1 + (10.0/255-1)*0.5
	if math.Abs(p.backdrop.Property(PropColorR)-want) > 1e-3 {
		t.Errorf("backdrop R = %v, want %v", p.backdrop.Property(PropColorR), want)
	}
}

func TestChoreographyDispose(t *testing.T) {
	p := newPortfolio()
	sc := p.mount()
	if sc.Len() == 0 {
		t.Fatal("mount registered nothing")
	}
	p.stage.Scroll(3000)
	p.run(0.5)

	sc.DisposeAll()
	if sc.Len() != 0 || p.stage.Engine().Active() != 0 {
		t.Errorf("after dispose: Len=%d Active=%d", sc.Len(), p.stage.Engine().Active())
	}
	if p.inner.Property(PropPinX) != 0 || p.outer.Property(PropPinY) != 0 {
		t.Error("pinned section not restored")
	}
}

func TestChoreographySkipsEmptyFields(t *testing.T) {
	s := NewStage(StageConfig{Width: 800, Height: 600})
	sc := Choreography{Sections: []Target{nil}}.Mount(s, "empty")
	if sc.Len() != 0 {
		t.Errorf("Len = %d, want 0", sc.Len())
	}
}
