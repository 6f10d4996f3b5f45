package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-invaders/internal/state"
)

func TestPickupViewVisible(t *testing.T) {
	tests := []struct {
		name     string
		ttl      int
		flashing bool
		want     bool
	}{
		{"steady", 300, false, true},
		{"flash on", 100, true, true},
		{"flash off", 95, true, false},
		{"flash on again", 90, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PickupView{TTL: tt.ttl, Flashing: tt.flashing}
			assert.Equal(t, tt.want, p.Visible())
		})
	}
}

func TestPickupViewLabelRises(t *testing.T) {
	p := PickupView{Y: 700, TTL: 30}
	assert.Equal(t, 700.0, p.LabelY())
	p.TTL = 0
	assert.Equal(t, 670.0, p.LabelY())
}

func TestSnapshotOverlay(t *testing.T) {
	tests := []struct {
		name      string
		phase     state.Phase
		suspended bool
		want      Overlay
	}{
		{"menu", state.Menu, false, MenuOverlay},
		{"menu while suspended", state.Menu, true, MenuOverlay},
		{"playing", state.Playing, false, NoOverlay},
		{"playing while suspended", state.Playing, true, PauseOverlay},
		{"paused", state.Paused, false, PauseOverlay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &Snapshot{Phase: tt.phase}
			assert.Equal(t, tt.want, snap.Overlay(tt.suspended))
		})
	}
}

func TestSnapshotHUDHiddenInMenu(t *testing.T) {
	assert.False(t, (&Snapshot{Phase: state.Menu}).HUDVisible())
	assert.True(t, (&Snapshot{Phase: state.Playing}).HUDVisible())
	assert.True(t, (&Snapshot{Phase: state.Paused}).HUDVisible())
}
