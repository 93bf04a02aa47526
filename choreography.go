package motion

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Reveal is a one-shot entrance used for a list of targets. Each target's
// animation is delayed by its index times Stagger.
type Reveal struct {
	Spec      AnimationSpec
	Stagger   float32
	Threshold float64
}

// Presets used by Choreography. They are plain values and may be copied and
// tuned per view.
var (
	HeroIntro = AnimationSpec{
		From:         map[Property]float64{PropAlpha: 0, PropY: 100},
		Duration:     1.5,
		TweenOptions: TweenOptions{Ease: ease.OutQuint},
	}
	SectionReveal = Reveal{
		Spec: AnimationSpec{
			From:         map[Property]float64{PropAlpha: 0, PropY: 50},
			Duration:     1,
			TweenOptions: TweenOptions{Ease: ease.OutBack},
		},
		Stagger:   0.1,
		Threshold: 0.25,
	}
	ProjectReveal = Reveal{
		Spec: AnimationSpec{
			From:         map[Property]float64{PropAlpha: 0, PropY: 100},
			Duration:     0.8,
			TweenOptions: TweenOptions{Ease: ease.OutQuart},
		},
		Stagger:   0.15,
		Threshold: 0.2,
	}
	SkillReveal = Reveal{
		Spec: AnimationSpec{
			From:         map[Property]float64{PropScale: 0, PropAlpha: 0},
			Duration:     0.5,
			TweenOptions: TweenOptions{Ease: ease.OutElastic},
		},
		Stagger:   0.05,
		Threshold: 0.1,
	}
	// BackdropScrub darkens the backdrop to #0a0a0a over the first 2000px
	// of scroll past its top.
	BackdropScrub = Trigger{
		Mode:     TriggerScrub,
		Distance: 2000,
		Animation: AnimationSpec{
			To:           map[Property]float64{PropColorR: 10.0 / 255, PropColorG: 10.0 / 255, PropColorB: 10.0 / 255},
			Duration:     1,
			TweenOptions: TweenOptions{Ease: ease.Linear},
		},
	}
)

// Floating shape motion: every shape drifts through random waypoints and
// returns to its origin, forever.
const (
	floatBaseDuration = 15
	floatStepDuration = 3
	floatCurviness    = 1.5
)

// HorizontalSection pairs a section with the wide strip it scrolls.
type HorizontalSection struct {
	Outer, Inner Target
}

// Choreography is the parameterized animation setup for a portfolio view.
// Each field lists the targets that take part in one effect; empty fields
// are skipped and nil targets are ignored. Mount wires everything through a
// fresh Scope so the whole view is released by one DisposeAll.
type Choreography struct {
	Hero       Target
	Sections   []Target
	Projects   []Target
	Skills     []Target
	Magnetic   []Target
	Floating   []Target
	Horizontal []HorizontalSection
	Backdrop   Target

	// Pin configures every horizontal section.
	Pin PinOptions
	// Pointer configures the magnetic and tilt effects.
	Pointer PointerParams
	// Rand supplies the floating-shape waypoints. Nil uses the global source.
	Rand *rand.Rand
}

// Mount registers every effect of the view on s and returns the owning
// scope.
func (c Choreography) Mount(s *Stage, name string) *Scope {
	sc := s.BeginView(name)

	if !isNil(c.Hero) {
		sc.AnimateFrom(c.Hero, HeroIntro)
	}

	for i, t := range c.Floating {
		sc.Animate(t, c.floatSpec(i))
	}

	for _, t := range c.Magnetic {
		sc.AttachPointerEffect(t, PointerMagnetic, c.Pointer)
	}

	mountReveal(sc, c.Sections, SectionReveal)
	mountReveal(sc, c.Projects, ProjectReveal)
	for _, t := range c.Projects {
		sc.AttachPointerEffect(t, PointerTilt, c.Pointer)
	}
	mountReveal(sc, c.Skills, SkillReveal)

	for _, hs := range c.Horizontal {
		sc.PinSection(hs.Outer, hs.Inner, c.Pin)
	}

	if !isNil(c.Backdrop) {
		sc.RegisterTrigger(c.Backdrop, BackdropScrub)
	}
	return sc
}

func mountReveal(sc *Scope, targets []Target, r Reveal) {
	for i, t := range targets {
		spec := r.Spec
		spec.Delay += float32(i) * r.Stagger
		sc.RegisterTrigger(t, Trigger{
			Threshold: r.Threshold,
			Mode:      TriggerOnce,
			Animation: spec,
		})
	}
}

// floatSpec builds the drifting path for the i-th floating shape.
func (c Choreography) floatSpec(i int) AnimationSpec {
	return AnimationSpec{
		Path: []Vec2{
			{X: 0, Y: 0},
			{X: c.random(-100, 100), Y: c.random(-100, 100)},
			{X: c.random(-200, 200), Y: c.random(-200, 200)},
			{X: 0, Y: 0},
		},
		Curviness: floatCurviness,
		Duration:  float32(floatBaseDuration + i*floatStepDuration),
		TweenOptions: TweenOptions{
			Ease:   ease.InOutSine,
			Repeat: RepeatForever,
		},
	}
}

func (c Choreography) random(lo, hi float64) float64 {
	var f float64
	if c.Rand != nil {
		f = c.Rand.Float64()
	} else {
		f = rand.Float64()
	}
	return lo + (hi-lo)*f
}
