package motion

type syntheticKind uint8

const (
	synthScroll syntheticKind = iota
	synthPointer
	synthLeave
	synthResize
	synthRefresh
)

// syntheticInput is one queued input sample. One sample is consumed per
// Update, before triggers are evaluated, exactly as if the host had called
// the matching input method.
type syntheticInput struct {
	kind syntheticKind
	x, y float64
}

// InjectScroll queues a scroll to y for the next frame.
func (s *Stage) InjectScroll(y float64) {
	s.injectQueue = append(s.injectQueue, syntheticInput{kind: synthScroll, y: y})
}

// InjectScrollTo queues a scroll from fromY to toY spread linearly over
// frames frames (minimum 1), ending exactly at toY.
func (s *Stage) InjectScrollTo(fromY, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	if frames == 1 {
		s.InjectScroll(toY)
		return
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectScroll(fromY + (toY-fromY)*t)
	}
}

// InjectPointer queues a pointer move to viewport coordinates (x, y).
func (s *Stage) InjectPointer(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticInput{kind: synthPointer, x: x, y: y})
}

// InjectPointerPath queues pointer moves from (fromX, fromY) to (toX, toY)
// over frames frames (minimum 2), ending exactly at the destination.
func (s *Stage) InjectPointerPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectPointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// InjectPointerLeave queues the pointer leaving the viewport.
func (s *Stage) InjectPointerLeave() {
	s.injectQueue = append(s.injectQueue, syntheticInput{kind: synthLeave})
}

// InjectResize queues a viewport resize followed by a geometry refresh.
func (s *Stage) InjectResize(w, h float64) {
	s.injectQueue = append(s.injectQueue, syntheticInput{kind: synthResize, x: w, y: h})
}

// InjectRefresh queues an OnViewportChange call.
func (s *Stage) InjectRefresh() {
	s.injectQueue = append(s.injectQueue, syntheticInput{kind: synthRefresh})
}

// Pending returns the number of queued synthetic inputs.
func (s *Stage) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued input and applies it.
// Returns true if an input was consumed.
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	in := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch in.kind {
	case synthScroll:
		s.Scroll(in.y)
	case synthPointer:
		s.PointerMove(in.x, in.y)
	case synthLeave:
		s.PointerLeave()
	case synthResize:
		s.Resize(in.x, in.y)
	case synthRefresh:
		s.OnViewportChange()
	}
	return true
}
