package tty

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"go-space-invaders/internal/input"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyboardHoldExpires(t *testing.T) {
	st := input.NewState()
	kb := NewKeyboard(st, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	kb.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), t0)
	assert.True(t, st.Snapshot().Held(input.Left))
	assert.True(t, st.Snapshot().Triggered(input.Left))

	// auto-repeat keeps it held
	kb.Expire(t0.Add(80 * time.Millisecond))
	kb.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), t0.Add(90*time.Millisecond))
	kb.Expire(t0.Add(150 * time.Millisecond))
	assert.True(t, st.Snapshot().Held(input.Left))

	kb.Expire(t0.Add(190 * time.Millisecond))
	assert.False(t, st.Snapshot().Held(input.Left))
}

func TestKeyboardOneShotControls(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Control
	}{
		{"space starts", runeKey(' '), input.Start},
		{"p pauses", runeKey('p'), input.Pause},
		{"escape pauses", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Pause},
		{"x bombs", runeKey('x'), input.Bomb},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := input.NewState()
			kb := NewKeyboard(st, 0)
			kb.HandleKey(tt.ev, time.Now())
			snap := st.Snapshot()
			assert.True(t, snap.Triggered(tt.want))
			assert.False(t, snap.Held(tt.want))
		})
	}
}

func TestKeyboardHeldControls(t *testing.T) {
	tests := map[rune]input.Control{'a': input.Left, 'd': input.Right, 'z': input.Fire}
	for r, want := range tests {
		st := input.NewState()
		NewKeyboard(st, 0).HandleKey(runeKey(r), time.Now())
		assert.True(t, st.Snapshot().Held(want), string(r))
	}
}

func TestKeyboardIgnoresUnmapped(t *testing.T) {
	st := input.NewState()
	NewKeyboard(st, 0).HandleKey(runeKey('k'), time.Now())
	assert.Equal(t, input.Snapshot{}, st.Snapshot())
}

func TestKeyboardReleaseAll(t *testing.T) {
	st := input.NewState()
	kb := NewKeyboard(st, time.Hour)
	kb.HandleKey(runeKey('d'), time.Now())
	kb.ReleaseAll()
	assert.False(t, st.Snapshot().Held(input.Right))
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(runeKey('q')))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, IsQuit(runeKey('a')))
}
