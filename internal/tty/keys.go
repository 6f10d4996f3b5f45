package tty

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/input"
)

// DefaultHoldTimeout is how long a key counts as held after its last
// key-down. Terminals report auto-repeat, not releases.
const DefaultHoldTimeout = 150 * time.Millisecond

// Keyboard turns terminal key events into input signals. Movement and
// fire are held while the terminal keeps repeating the key.
type Keyboard struct {
	state   *input.State
	timeout time.Duration

	mu   sync.Mutex
	last map[input.Control]time.Time
}

func NewKeyboard(state *input.State, timeout time.Duration) *Keyboard {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &Keyboard{
		state:   state,
		timeout: timeout,
		last:    make(map[input.Control]time.Time),
	}
}

// control maps a key event. held is false for one-shot controls.
func control(ev *tcell.EventKey) (c input.Control, held bool, ok bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.Left, true, true
	case tcell.KeyRight:
		return input.Right, true, true
	case tcell.KeyUp:
		return input.Fire, true, true
	case tcell.KeyEscape:
		return input.Pause, false, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return input.Left, true, true
		case 'd', 'D':
			return input.Right, true, true
		case 'z', 'Z':
			return input.Fire, true, true
		case 'x', 'X':
			return input.Bomb, false, true
		case 'p', 'P':
			return input.Pause, false, true
		case ' ':
			return input.Start, false, true
		}
	}
	return 0, false, false
}

// IsQuit reports the keys that leave the program.
func IsQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

// HandleKey records a key-down at now.
func (k *Keyboard) HandleKey(ev *tcell.EventKey, now time.Time) {
	c, held, ok := control(ev)
	if !ok {
		return
	}
	if !held {
		k.state.Trigger(c)
		return
	}

	k.mu.Lock()
	k.last[c] = now
	k.mu.Unlock()
	k.state.Press(c)
}

// Expire releases held controls whose key has not repeated within the
// timeout.
func (k *Keyboard) Expire(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for c, t := range k.last {
		if now.Sub(t) >= k.timeout {
			k.state.Release(c)
			delete(k.last, c)
		}
	}
}

// ReleaseAll drops every held control.
func (k *Keyboard) ReleaseAll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.last)
	k.state.ReleaseAll()
}
