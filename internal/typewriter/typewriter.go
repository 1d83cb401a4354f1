// Package typewriter reveals a line of text a few characters at a time.
package typewriter

import (
	"time"
	"unicode/utf8"
)

// DefaultStep is the number of characters revealed per step.
const DefaultStep = 2

// Config controls reveal pacing.
type Config struct {
	Interval time.Duration // minimum time between steps
	Step     int           // characters revealed per step
}

// State is the reveal progress of one line. Revealed is always a prefix of
// Target. The zero value tracks the empty string.
type State struct {
	Target   string
	Revealed string
	LastStep time.Time
}

// Done reports whether the whole target is visible.
func (s State) Done() bool {
	return s.Revealed == s.Target
}

// Advance returns the state after observing target at now.
//
// A new target restarts the reveal from the empty string without revealing
// anything on the same call. Otherwise, once more than Interval has passed
// since the last step, up to Step more characters become visible.
func (c Config) Advance(s State, target string, now time.Time) State {
	if target != s.Target {
		return State{Target: target, LastStep: now}
	}
	if s.Done() {
		return s
	}
	if now.Sub(s.LastStep) <= c.Interval {
		return s
	}

	step := c.Step
	if step <= 0 {
		step = DefaultStep
	}

	n := utf8.RuneCountInString(s.Revealed) + step
	s.Revealed = prefix(s.Target, n)
	s.LastStep = now
	return s
}

// prefix returns the first n runes of s, or s when it is shorter.
func prefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// Writer holds the state for a single line.
type Writer struct {
	cfg   Config
	state State
}

func NewWriter(cfg Config) *Writer {
	return &Writer{cfg: cfg}
}

// Update advances the writer and returns the visible text.
func (w *Writer) Update(target string, now time.Time) string {
	w.state = w.cfg.Advance(w.state, target, now)
	return w.state.Revealed
}

func (w *Writer) State() State {
	return w.state
}
