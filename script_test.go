package motion

import (
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "resize", "width": 1280, "height": 720},
			{"action": "scrollTo", "fromY": 0, "toY": 900, "frames": 30},
			{"action": "pointer", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "leave"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Width != 1280 || runner.steps[0].Height != 720 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].ToY != 900 || runner.steps[1].Frames != 30 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].X != 100 || runner.steps[2].Y != 200 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"invalid json", `not json`, "parse input script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "click"}]}`, `unknown action "click"`},
	}
	for _, tt := range tests {
		_, err := LoadScript([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestScriptRunner_Replay(t *testing.T) {
	s := newTestStage()
	card := NewElement("card", 0, 1000, 200, 200)
	h := s.BeginView("v").RegisterTrigger(card, Trigger{Threshold: 0.5, Animation: fadeIn(0.5)})

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "scrollTo", "fromY": 0, "toY": 900, "frames": 3},
		{"action": "wait", "frames": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(runner)

	for i := 0; i < 100 && !runner.Done(); i++ {
		s.Update(1.0 / 60)
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
	if s.Viewport().ScrollY != 900 {
		t.Errorf("ScrollY = %v, want 900", s.Viewport().ScrollY)
	}
	if !h.Fired() {
		t.Error("replayed scroll did not fire the trigger")
	}
	if s.Frame() < 6 {
		t.Errorf("script finished after %d frames, want at least 6", s.Frame())
	}
}

func TestScriptRunner_PointerAndResize(t *testing.T) {
	s, sc, btn := newPointerStage()
	h := sc.AttachMagnetic(btn, 0.2)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "resize", "width": 1024, "height": 768},
		{"action": "pointerPath", "fromX": 0, "fromY": 0, "toX": 150, "toY": 150, "frames": 3},
		{"action": "refresh"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(runner)
	for i := 0; i < 50 && !runner.Done(); i++ {
		s.Update(1.0 / 60)
	}
	if vp := s.Viewport(); vp.Width != 1024 || vp.Height != 768 {
		t.Errorf("Viewport = %+v", vp)
	}
	if !h.Hovered() {
		t.Error("scripted pointer did not hover the button")
	}
}
