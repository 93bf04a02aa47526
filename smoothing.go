package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.01

// smoother eases a value toward a moving goal with a critically damped
// spring. A zero lag passes the goal straight through.
type smoother struct {
	lag    float64
	dt     float32
	spring harmonica.Spring
	pos    float64
	vel    float64
	primed bool
}

func newSmoother(lag float64) smoother {
	return smoother{lag: lag}
}

func (s *smoother) enabled() bool {
	return s.lag > 0
}

// step advances the spring by dt toward goal and returns the new value. The
// first call snaps to goal.
func (s *smoother) step(dt float32, goal float64) float64 {
	if !s.enabled() || !s.primed {
		s.reset(goal)
		return goal
	}
	if dt <= 0 {
		return s.pos
	}
	if dt != s.dt {
		// Angular frequency 4/lag settles a critically damped spring in
		// roughly lag seconds.
		s.spring = harmonica.NewSpring(float64(dt), 4/s.lag, 1)
		s.dt = dt
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, goal)
	if math.Abs(goal-s.pos) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.pos = goal
		s.vel = 0
	}
	return s.pos
}

func (s *smoother) reset(v float64) {
	s.pos = v
	s.vel = 0
	s.primed = true
}

func (s *smoother) settled(goal float64) bool {
	return !s.enabled() || (s.pos == goal && s.vel == 0)
}
