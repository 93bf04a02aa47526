// Package motion orchestrates scroll- and pointer-driven animation for a
// presentation layer: viewport-triggered reveals, pinned horizontal-scroll
// sections, magnetic and tilt hover effects, and scoped teardown.
//
// The package does not draw anything. The host hands it [Target] handles
// (anything with a layout box and a property surface), feeds it scroll,
// resize, and pointer samples, and calls [Stage.Update] once per frame. The
// stage writes animated property values back through the targets.
//
// # Quick start
//
//	stage := motion.NewStage(motion.StageConfig{Width: 1280, Height: 720})
//	view := stage.BeginView("home")
//
//	card := motion.NewElement("card", 100, 900, 320, 200)
//	view.RegisterTrigger(card, motion.Trigger{
//		Threshold: 0.2,
//		Mode:      motion.TriggerOnce,
//		Animation: motion.AnimationSpec{
//			From:     map[motion.Property]float64{motion.PropAlpha: 0, motion.PropY: 100},
//			Duration: 0.8,
//		},
//	})
//	view.AttachTilt(card, 15)
//
//	// every frame:
//	stage.Scroll(scrollY)
//	stage.PointerMove(mouseX, mouseY)
//	stage.Update(dt)
//
//	// when the view goes away:
//	view.DisposeAll()
//
// For an Ebitengine game, [github.com/phanxgames/motion/ebitenhost] samples
// the wheel, cursor, and window size and drives the stage for you.
//
// # Frames
//
// Input methods only record the latest sample. [Stage.Update] runs one
// ordered pass: triggers, then pins, then pointer effects, then listeners,
// then the tween engine. Stale samples are never queued.
//
// # Ownership
//
// Each (target, property) pair is written by at most one tween at a time;
// starting a tween takes the pair from whichever tween held it. A [Scope]
// owns everything registered through it, and [Scope.DisposeAll] removes it
// all synchronously.
//
// # Easing
//
// Curves come from [gween]'s ease package; [EaseByName] resolves web-style
// names such as "power3.out" or "elastic.out(1, 0.5)".
//
// [gween]: https://github.com/tanema/gween
package motion
