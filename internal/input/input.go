// Package input keeps the control signals shared between a host's event
// goroutine and the simulation tick.
package input

import "sync"

// Control is one of the fixed game controls.
type Control int

const (
	Pause Control = iota
	Left
	Right
	Fire
	Bomb
	Start

	numControls
)

func (c Control) String() string {
	switch c {
	case Pause:
		return "pause"
	case Left:
		return "left"
	case Right:
		return "right"
	case Fire:
		return "fire"
	case Bomb:
		return "bomb"
	case Start:
		return "start"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of every signal taken at the start of a tick.
type Snapshot struct {
	held      [numControls]bool
	triggered [numControls]bool
}

// Held is the level-triggered signal: true while the key is down.
func (s Snapshot) Held(c Control) bool {
	return c >= 0 && c < numControls && s.held[c]
}

// Triggered is the edge-triggered signal: true once per press until the
// end of the tick that saw it.
func (s Snapshot) Triggered(c Control) bool {
	return c >= 0 && c < numControls && s.triggered[c]
}

// Source is what the simulation reads input from.
type Source interface {
	Snapshot() Snapshot
	ResetTriggered()
}

// State is the mutable signal set written by hosts. It is safe for
// concurrent use.
type State struct {
	mu   sync.Mutex
	cur  Snapshot
	seen [numControls]bool // triggers handed out by the last Snapshot
}

var _ Source = (*State)(nil)

func NewState() *State {
	return &State{}
}

// Press marks c held and latches its trigger. Key repeat while already held
// does not latch again.
func (s *State) Press(c Control) {
	if c < 0 || c >= numControls {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cur.held[c] {
		s.cur.triggered[c] = true
	}
	s.cur.held[c] = true
}

// Release clears the held signal. A latched trigger survives until
// ResetTriggered.
func (s *State) Release(c Control) {
	if c < 0 || c >= numControls {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.held[c] = false
}

// Trigger latches c without holding it, for hosts that only see key-down
// events.
func (s *State) Trigger(c Control) {
	if c < 0 || c >= numControls {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.triggered[c] = true
}

// ReleaseAll clears every held signal, e.g. when the window loses focus.
func (s *State) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.held = [numControls]bool{}
}

// Snapshot copies the signals for one tick and remembers which triggers it
// handed out.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = s.cur.triggered
	return s.cur
}

// ResetTriggered clears the edge-triggered signals the last Snapshot saw.
// A trigger latched after that Snapshot survives for the next tick. The
// session calls it once at the end of each tick.
func (s *State) ResetTriggered() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c, seen := range s.seen {
		if seen {
			s.cur.triggered[c] = false
		}
	}
	s.seen = [numControls]bool{}
}
