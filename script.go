package motion

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"scroll": true, "scrollTo": true, "pointer": true, "pointerPath": true,
	"leave": true, "resize": true, "refresh": true, "wait": true,
}

// ScriptRunner replays a recorded sequence of scroll, pointer, and resize
// input across frames, for reproducing interaction sequences in tests and
// demos. Attach to a Stage via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script and returns a ScriptRunner ready to
// be attached to a Stage via SetScript.
//
//	{"steps": [
//		{"action": "resize", "width": 1280, "height": 720},
//		{"action": "scrollTo", "fromY": 0, "toY": 900, "frames": 30},
//		{"action": "pointerPath", "fromX": 10, "fromY": 10, "toX": 300, "toY": 200, "frames": 10},
//		{"action": "wait", "frames": 60},
//		{"action": "leave"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the stage. The runner's step method
// is called from Stage.Update before queued input is consumed each frame.
func (s *Stage) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step runs at most one script action per frame. It holds while synthetic
// input from an earlier action is still queued or a wait is counting down.
func (r *ScriptRunner) step(s *Stage) {
	switch {
	case r.done, len(s.injectQueue) > 0:
		return
	case r.waitCount > 0:
		r.waitCount--
		return
	case r.cursor >= len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.apply(s, st)

	r.done = r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0
}

func (r *ScriptRunner) apply(s *Stage, st scriptStep) {
	switch st.Action {
	case "scroll":
		s.InjectScroll(st.Y)
	case "scrollTo":
		s.InjectScrollTo(st.FromY, st.ToY, st.Frames)
	case "pointer":
		s.InjectPointer(st.X, st.Y)
	case "pointerPath":
		s.InjectPointerPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "leave":
		s.InjectPointerLeave()
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "refresh":
		s.InjectRefresh()
	case "wait":
		// The frame that reads the wait step is the first waited frame.
		r.waitCount = max(st.Frames-1, 0)
	}
}
