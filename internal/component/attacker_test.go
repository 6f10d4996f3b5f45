package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils/utilstest"
)

func TestAttackerPathWraps(t *testing.T) {
	a := NewPathAttacker([]Waypoint{{0, 0}, {10, 0}, {20, 5}}, 0, 100, 50)
	assert.Equal(t, 100.0, a.X)
	assert.Equal(t, 50.0, a.Y)

	a.Step()
	assert.Equal(t, 110.0, a.X)
	a.Step()
	assert.Equal(t, 120.0, a.X)
	assert.Equal(t, 55.0, a.Y)
	a.Step()
	assert.Equal(t, 100.0, a.X)
	assert.Equal(t, 0, a.Trajectory().Index())
}

func TestAttackerMoveToIndex(t *testing.T) {
	a := NewPathAttacker([]Waypoint{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, 0, 0, 0)
	a.MoveToIndex(6)
	assert.Equal(t, 2.0, a.X)
	a.MoveToIndex(-1)
	assert.Equal(t, 3.0, a.X)
}

func TestAttackerCorpseLifetime(t *testing.T) {
	a := NewPathAttacker([]Waypoint{{0, 0}, {5, 0}}, 0, 0, 0)
	a.SetHealth(0)
	require.True(t, a.IsCorpse())

	for i := 1; i < config.DeathTimerLength; i++ {
		a.Step()
		require.True(t, a.Alive(), "step %d", i)
	}
	a.Step()
	assert.False(t, a.Alive())
	assert.False(t, a.IsCorpse())
}

func TestAttackerLivingDoesNotAge(t *testing.T) {
	a := NewPathAttacker([]Waypoint{{0, 0}}, 0, 0, 0)
	for i := 0; i < 5*config.DeathTimerLength; i++ {
		a.Step()
	}
	assert.True(t, a.Alive())
	assert.Equal(t, config.DeathTimerLength, a.DeathTimer())
}

func TestAttackerBounce(t *testing.T) {
	traj := NewBounce(BounceRule{MinX: 0, MaxX: 10, Speed: 4, Drop: 5, Right: true})
	a := NewAttacker(0, 0, traj, 0)

	wantX := []float64{4, 8, 10, 6, 2, 0, 4}
	wantY := []float64{0, 0, 5, 5, 5, 10, 10}
	for i := range wantX {
		a.Step()
		assert.Equal(t, wantX[i], a.X, "step %d", i)
		assert.Equal(t, wantY[i], a.Y, "step %d", i)
	}

	a.Hit()
	assert.False(t, a.Alive(), "bounce attackers leave no corpse")
}

func TestAttackerHitAndTier(t *testing.T) {
	a := NewStationaryAttacker(0, 0, 0)
	a.SetHealth(4)
	tiers := []int{3, 3, 2, 1, 0, 0}
	for i, want := range tiers {
		assert.Equal(t, want, a.Tier(), "hit %d", i)
		a.Hit()
	}
	assert.Equal(t, 0, a.Health())
}

func TestAttackerFire(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		prob float64
		want bool
	}{
		{"roll below probability", 0.05, 0.1, true},
		{"roll above probability", 0.5, 0.1, false},
		{"zero probability", 0, 0, false},
		{"certain", 0.999, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewStationaryAttacker(100, 40, tt.prob)
			p := a.Fire(&utilstest.SequenceRand{Floats: []float64{tt.roll}})
			if !tt.want {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, ProjectileDown, p.Kind)
			assert.Equal(t, 100+config.AttackerWidth/2-config.PhaserWidth/2, p.X)
			assert.Equal(t, 40+config.AttackerHeight, p.Y)
		})
	}
}
