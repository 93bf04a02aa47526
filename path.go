package motion

// curvePath is a Catmull-Rom spline through a list of waypoints, sampled by
// a single progress value spread evenly across its segments.
type curvePath struct {
	pts       []Vec2
	curviness float64
}

func newCurvePath(pts []Vec2, curviness float64) *curvePath {
	cp := make([]Vec2, len(pts))
	copy(cp, pts)
	return &curvePath{pts: cp, curviness: curviness}
}

// at returns the point at progress p. Progress outside [0, 1] (from
// overshooting easings) is clamped to the endpoints.
func (c *curvePath) at(p float64) Vec2 {
	n := len(c.pts)
	switch n {
	case 0:
		return Vec2{}
	case 1:
		return c.pts[0]
	}

	segs := n - 1
	f := clamp(p, 0, 1) * float64(segs)
	i := int(f)
	if i >= segs {
		i = segs - 1
	}
	u := f - float64(i)

	p0 := c.pts[max(i-1, 0)]
	p1 := c.pts[i]
	p2 := c.pts[i+1]
	p3 := c.pts[min(i+2, n-1)]

	k := c.curviness * 0.5
	m1 := Vec2{X: (p2.X - p0.X) * k, Y: (p2.Y - p0.Y) * k}
	m2 := Vec2{X: (p3.X - p1.X) * k, Y: (p3.Y - p1.Y) * k}

	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	return Vec2{
		X: h00*p1.X + h10*m1.X + h01*p2.X + h11*m2.X,
		Y: h00*p1.Y + h10*m1.Y + h01*p2.Y + h11*m2.Y,
	}
}
