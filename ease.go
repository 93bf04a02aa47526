package motion

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEase is used when a tween does not name a curve.
var DefaultEase ease.TweenFunc = ease.OutQuad

// easeNames maps curve names to gween curves. The "powerN" family follows the
// usual web naming: power1 is quadratic, power2 cubic, power3 quartic and
// power4 quintic.
var easeNames = map[string]ease.TweenFunc{
	"none":   ease.Linear,
	"linear": ease.Linear,

	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inout": ease.InOutQuint,

	"quad.in":     ease.InQuad,
	"quad.out":    ease.OutQuad,
	"quad.inout":  ease.InOutQuad,
	"cubic.in":    ease.InCubic,
	"cubic.out":   ease.OutCubic,
	"cubic.inout": ease.InOutCubic,

	"sine.in":    ease.InSine,
	"sine.out":   ease.OutSine,
	"sine.inout": ease.InOutSine,
	"expo.in":    ease.InExpo,
	"expo.out":   ease.OutExpo,
	"expo.inout": ease.InOutExpo,
	"circ.in":    ease.InCirc,
	"circ.out":   ease.OutCirc,
	"circ.inout": ease.InOutCirc,

	"back.in":       ease.InBack,
	"back.out":      ease.OutBack,
	"back.inout":    ease.InOutBack,
	"elastic.in":    ease.InElastic,
	"elastic.out":   ease.OutElastic,
	"elastic.inout": ease.InOutElastic,
	"bounce.in":     ease.InBounce,
	"bounce.out":    ease.OutBounce,
	"bounce.inout":  ease.InOutBounce,
}

// EaseByName returns the curve registered under name. Names are case
// insensitive and any parenthesised parameters are ignored, so
// "elastic.out(1, 0.5)" resolves to the elastic-out curve. Unknown names
// return DefaultEase and false.
func EaseByName(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(key, '('); i >= 0 {
		key = strings.TrimSpace(key[:i])
	}
	if fn, ok := easeNames[key]; ok {
		return fn, true
	}
	return DefaultEase, false
}
