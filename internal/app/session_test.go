package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/choreography"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/state"
	"go-space-invaders/internal/utils"
)

type harness struct {
	session *Session
	keys    *input.State
	events  []event.Event
	uptime  int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{keys: input.NewState()}
	d := event.NewDispatcher()
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { h.events = append(h.events, e) }))

	s, err := NewSession(config.Defaults(), h.keys, utils.NewPRNGService(1), d, zerolog.Nop())
	require.NoError(t, err)
	h.session = s
	return h
}

func (h *harness) tick() {
	h.session.OnTick(h.uptime)
	h.uptime += config.TickInterval.Milliseconds()
}

func (h *harness) press(c input.Control) {
	h.keys.Press(c)
	h.tick()
	h.keys.Release(c)
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	h.press(input.Start)
	require.Equal(t, state.Playing, h.session.Phase())
}

func (h *harness) types() []event.EventType {
	out := make([]event.EventType, len(h.events))
	for i, e := range h.events {
		out[i] = e.Type
	}
	return out
}

func TestNewSessionRejectsBadSettings(t *testing.T) {
	s := config.Defaults()
	s.Width = 0
	_, err := NewSession(s, input.NewState(), utils.NewPRNGService(1), nil, zerolog.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMenuWaitsForStart(t *testing.T) {
	h := newHarness(t)
	snap := h.session.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, state.Menu, snap.Phase)
	assert.Nil(t, snap.Vehicle)

	h.tick()
	assert.Equal(t, state.Menu, h.session.Phase())

	h.start(t)
	assert.Equal(t, config.StartLevel, h.session.Level())
	assert.Equal(t, config.StartLives, h.session.Lives())
	assert.NotNil(t, h.session.World.Vehicle)
	assert.NotEmpty(t, h.session.World.Attackers)
	assert.Contains(t, h.types(), event.GameStarted)
	assert.Contains(t, h.types(), event.PhaseChanged)
}

func TestEdgeSignalsClearedEveryTick(t *testing.T) {
	h := newHarness(t)
	h.keys.Trigger(input.Fire)
	h.tick()
	assert.False(t, h.keys.Snapshot().Triggered(input.Fire))

	h.start(t)
	h.keys.Trigger(input.Bomb)
	h.tick()
	assert.False(t, h.keys.Snapshot().Triggered(input.Bomb))
}

func TestPauseAndResume(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.press(input.Pause)
	require.Equal(t, state.Paused, h.session.Phase())

	v := h.session.World.Vehicle
	counter := v.StateCounter()
	h.tick()
	h.tick()
	assert.Equal(t, counter, v.StateCounter(), "world frozen while paused")

	h.press(input.Pause)
	assert.Equal(t, state.Playing, h.session.Phase())
}

func TestSchedulerPauseLandsInPausedPhase(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.session.OnPaused()
	assert.True(t, h.session.Suspended())
	h.session.OnResumed()
	assert.False(t, h.session.Suspended())

	h.tick()
	assert.Equal(t, state.Paused, h.session.Phase())
}

// Lives at one, a hit, and the explosion running its course ends the game.
func TestLastLifeEndsGame(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.session.lives = 1
	h.session.World.Attackers = []*component.Attacker{component.NewStationaryAttacker(0, 0, 0)}

	v := h.session.World.Vehicle
	v.GetHit()
	require.Equal(t, component.Exploding, v.State())

	for i := 1; i < config.ExplodeTime; i++ {
		h.tick()
		require.Equal(t, state.Playing, h.session.Phase(), "tick %d", i)
	}
	h.tick()

	assert.True(t, v.IsDead())
	assert.Equal(t, 0, h.session.Lives())
	assert.Equal(t, state.Menu, h.session.Phase())
	assert.Contains(t, h.types(), event.GameOver)
	assert.Equal(t, state.Menu, h.session.Snapshot().Phase)
}

func TestLifeLostRespawnsVehicle(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	survivor := component.NewStationaryAttacker(0, 0, 0)
	h.session.World.Attackers = []*component.Attacker{survivor}
	h.session.World.Phasers = append(h.session.World.Phasers, component.NewPhaser(0, 100))

	old := h.session.World.Vehicle
	old.GetHit()
	for i := 0; i < config.ExplodeTime; i++ {
		h.tick()
	}

	assert.Equal(t, config.StartLives-1, h.session.Lives())
	assert.Equal(t, state.Playing, h.session.Phase())
	assert.NotSame(t, old, h.session.World.Vehicle)
	assert.Equal(t, component.Healthy, h.session.World.Vehicle.State())
	assert.Empty(t, h.session.World.Phasers)
	assert.Equal(t, []*component.Attacker{survivor}, h.session.World.Attackers)
	assert.Contains(t, h.types(), event.LifeLost)
}

// Emptying the attacker set advances exactly one level and lays it out
// before the collision pass of the same tick.
func TestClearedLevelAdvances(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.session.World.Attackers = nil

	h.tick()

	assert.Equal(t, 2, h.session.Level())
	want := choreography.New(config.ScreenWidth, config.ScreenHeight).Layout(2, utils.NewPRNGService(1))
	assert.Len(t, h.session.World.Attackers, len(want))
	assert.Equal(t, 2, h.session.Snapshot().Level)
	assert.Contains(t, h.types(), event.LevelCleared)

	h.tick()
	assert.Equal(t, 2, h.session.Level())
}

func TestSnapshotIsImmutable(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	before := h.session.Snapshot()
	vx := before.Vehicle.X
	attackers := len(before.Attackers)

	h.keys.Press(input.Left)
	h.tick()
	h.tick()

	after := h.session.Snapshot()
	assert.NotSame(t, before, after)
	assert.Equal(t, vx, before.Vehicle.X)
	assert.Len(t, before.Attackers, attackers)
	assert.Less(t, after.Vehicle.X, vx)
	assert.Equal(t, 2*config.TickInterval.Milliseconds(), after.UptimeMs)
}

func TestSnapshotContents(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	w := h.session.World
	w.Shells = append(w.Shells, component.NewShell(10, 500, 1))
	w.Pickups = append(w.Pickups, component.NewPickup(10, 10))
	h.session.publish()

	snap := h.session.Snapshot()
	require.NotNil(t, snap.Vehicle)
	assert.Equal(t, 1.0, snap.Vehicle.Ammo)
	assert.Equal(t, config.StartLives, snap.Lives)
	assert.Len(t, snap.Attackers, len(w.Attackers))
	require.Len(t, snap.Projectiles, 1)
	assert.Equal(t, component.ProjectileUp, snap.Projectiles[0].Kind)
	require.Len(t, snap.Pickups, 1)
	assert.Equal(t, component.Unassigned, snap.Pickups[0].Kind)
}

func TestAttackerColorTier(t *testing.T) {
	assert.Equal(t, 0, AttackerColorTier(-1))
	assert.Equal(t, 2, AttackerColorTier(2))
	assert.Equal(t, len(config.AttackerTierColors)-1, AttackerColorTier(10))
}

// midTickSource runs after once, right after the tick has read its input.
type midTickSource struct {
	*input.State
	after func()
}

func (m *midTickSource) Snapshot() input.Snapshot {
	snap := m.State.Snapshot()
	if f := m.after; f != nil {
		m.after = nil
		f()
	}
	return snap
}

func TestPressDuringTickReachesNextTick(t *testing.T) {
	keys := input.NewState()
	src := &midTickSource{State: keys}
	s, err := NewSession(config.Defaults(), src, utils.NewPRNGService(1), nil, zerolog.Nop())
	require.NoError(t, err)

	keys.Trigger(input.Start)
	s.OnTick(0)
	require.Equal(t, state.Playing, s.Phase())

	src.after = func() { keys.Trigger(input.Pause) }
	s.OnTick(20)
	assert.Equal(t, state.Playing, s.Phase())

	s.OnTick(40)
	assert.Equal(t, state.Paused, s.Phase())
}
