package motion

import (
	"math"
	"testing"
)

func TestCurvePathEndpoints(t *testing.T) {
	c := newCurvePath([]Vec2{{0, 0}, {100, 50}, {200, 0}}, 1.5)
	tests := []struct {
		p    float64
		want Vec2
	}{
		{0, Vec2{0, 0}},
		{0.5, Vec2{100, 50}},
		{1, Vec2{200, 0}},
		{-0.3, Vec2{0, 0}},
		{1.4, Vec2{200, 0}},
	}
	for _, tt := range tests {
		got := c.at(tt.p)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("at(%v) = %+v, want %+v", tt.p, got, tt.want)
		}
	}
}

func TestCurvePathZeroCurvinessIsStraight(t *testing.T) {
	c := newCurvePath([]Vec2{{0, 0}, {100, 0}, {100, 100}}, 0)
	got := c.at(0.25)
	if math.Abs(got.X-50) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("at(0.25) = %+v, want (50, 0)", got)
	}
}

func TestCurvePathCurves(t *testing.T) {
	c := newCurvePath([]Vec2{{0, 0}, {100, 0}, {100, 100}}, 1)
	got := c.at(0.25)
	if math.Abs(got.Y) < 1e-6 {
		t.Errorf("at(0.25) = %+v, expected the curve to bend off the straight segment", got)
	}
}

func TestCurvePathDegenerate(t *testing.T) {
	if got := newCurvePath(nil, 1).at(0.5); got != (Vec2{}) {
		t.Errorf("empty path = %+v", got)
	}
	if got := newCurvePath([]Vec2{{3, 4}}, 1).at(0.5); got != (Vec2{3, 4}) {
		t.Errorf("single point = %+v", got)
	}
}

func TestCurvePathCopiesWaypoints(t *testing.T) {
	pts := []Vec2{{0, 0}, {10, 10}}
	c := newCurvePath(pts, 1)
	pts[1] = Vec2{99, 99}
	if got := c.at(1); got != (Vec2{10, 10}) {
		t.Errorf("path followed caller's slice: %+v", got)
	}
}
