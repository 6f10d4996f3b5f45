package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/config"
)

func TestVehicleAmmoStaysInBounds(t *testing.T) {
	v := NewVehicle(100, 700)

	for i := 0; i < 2000; i++ {
		if i%3 == 0 {
			v.Fire()
		}
		v.UpdateState()
		require.GreaterOrEqual(t, v.Ammo(), 0.0, "tick %d", i)
		require.LessOrEqual(t, v.Ammo(), v.MaxAmmo(), "tick %d", i)
	}
}

func TestVehicleFire(t *testing.T) {
	t.Run("spends ammo and starts reload", func(t *testing.T) {
		v := NewVehicle(100, 700)
		shell := v.Fire()
		require.NotNil(t, shell)
		assert.Equal(t, ProjectileUp, shell.Kind)
		assert.Equal(t, config.MaxAmmo-1, v.Ammo())
		assert.Equal(t, 100+config.VehicleWidth/2-config.ShellWidth/2, shell.X)
		assert.Equal(t, 700-config.ShellHeight, shell.Y)

		assert.Nil(t, v.Fire(), "still reloading")
	})

	t.Run("reload takes reloadTime ticks", func(t *testing.T) {
		v := NewVehicle(0, 0)
		require.NotNil(t, v.Fire())
		for i := 0; i < int(config.AmmoReloadTime); i++ {
			v.UpdateState()
		}
		assert.NotNil(t, v.Fire())
	})

	t.Run("empty magazine overheats", func(t *testing.T) {
		v := NewVehicle(0, 0)
		v.SetAmmoReloadTime(0)
		for i := 0; i < int(config.MaxAmmo); i++ {
			require.NotNil(t, v.Fire(), "shot %d", i)
		}
		assert.Nil(t, v.Fire())
		assert.True(t, v.Overheated())
		assert.Nil(t, v.Fire(), "overheated")
	})

	t.Run("overheat clears above half the magazine", func(t *testing.T) {
		v := NewVehicle(0, 0)
		v.SetAmmoReloadTime(0)
		for v.Fire() != nil {
		}
		require.True(t, v.Overheated())

		ticks := 0
		for v.Overheated() {
			v.UpdateState()
			ticks++
			require.Less(t, ticks, 1000)
		}
		assert.Greater(t, v.Ammo(), config.OverheatRecoverFrac*config.MaxAmmo)
	})

	t.Run("bigger ammo scales the shell", func(t *testing.T) {
		v := NewVehicle(0, 100)
		v.IncreaseSizeFactor()
		shell := v.Fire()
		require.NotNil(t, shell)
		assert.Equal(t, 2*config.ShellWidth, shell.W)
		assert.Equal(t, 2*config.ShellHeight, shell.H)
		assert.Equal(t, 100-2*config.ShellHeight, shell.Y)
	})

	t.Run("exploding vehicle cannot fire", func(t *testing.T) {
		v := NewVehicle(0, 0)
		v.GetHit()
		assert.Nil(t, v.Fire())
	})
}

func TestVehicleGetHitIsIdempotent(t *testing.T) {
	v := NewVehicle(0, 0)
	v.GetHit()
	require.Equal(t, Exploding, v.State())

	v.UpdateState()
	v.UpdateState()
	v.GetHit()
	assert.Equal(t, Exploding, v.State())
	assert.Equal(t, 2, v.StateCounter(), "second hit must not restart the explosion")
}

func TestVehicleShieldBlocksHits(t *testing.T) {
	v := NewVehicle(0, 0)
	v.SetShielded()
	v.GetHit()
	assert.Equal(t, Shielded, v.State())
}

func TestVehicleExplodeTime(t *testing.T) {
	v := NewVehicle(0, 0)
	v.GetHit()

	for i := 1; i < config.ExplodeTime; i++ {
		v.UpdateState()
		require.Equal(t, Exploding, v.State(), "update %d", i)
	}
	v.UpdateState()
	assert.True(t, v.IsDead())
}

func TestVehicleShieldTime(t *testing.T) {
	v := NewVehicle(0, 0)
	v.SetShielded()

	for i := 1; i < config.ShieldTime; i++ {
		v.UpdateState()
		require.Equal(t, Shielded, v.State(), "update %d", i)
	}
	v.UpdateState()
	assert.Equal(t, Healthy, v.State())
}

func TestVehicleMove(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		right bool
		want  float64
	}{
		{"left", 100, false, 100 - config.VehicleSpeed},
		{"right", 100, true, 100 + config.VehicleSpeed},
		{"left wall", 2, false, 0},
		{"right wall", 1198 - config.VehicleWidth, true, 1200 - config.VehicleWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVehicle(tt.x, 0)
			if tt.right {
				v.MoveRight(1200)
			} else {
				v.MoveLeft(0)
			}
			assert.Equal(t, tt.want, v.X)
		})
	}

	t.Run("exploding does not move", func(t *testing.T) {
		v := NewVehicle(100, 0)
		v.GetHit()
		v.MoveLeft(0)
		v.MoveRight(1200)
		assert.Equal(t, 100.0, v.X)
	})
}
