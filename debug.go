package motion

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug output goes. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// frameStats holds per-frame timing and registry counts.
// Only populated when Stage.debug is true.
type frameStats struct {
	passTime  time.Duration
	tweens    int
	triggers  int
	pins      int
	effects   int
	listeners int
}

// SetDebugMode enables or disables debug mode. When enabled, ignored
// registrations and replacements are reported as warnings and per-frame
// stats are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Stage) DebugMode() bool {
	return s.debug
}

// debugLog prints timing and registry stats.
func (s *Stage) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[motion] frame %d | pass: %v | tweens: %d | triggers: %d | pins: %d | effects: %d | listeners: %d\n",
		s.frame, stats.passTime, stats.tweens, stats.triggers, stats.pins, stats.effects, stats.listeners)
}

// warnf prints a warning in debug mode. Nothing in the orchestration layer
// fails loudly; a bad registration degrades to a static element.
func (s *Stage) warnf(format string, args ...any) {
	if s == nil || !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[motion] warning: "+format+"\n", args...)
}
