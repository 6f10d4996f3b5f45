package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	body := `{"tickInterval": "10ms", "width": 640, "seed": 42, "logLevel": "debug"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(body), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, s.TickInterval)
	assert.Equal(t, 640.0, s.Width)
	assert.Equal(t, float64(ScreenHeight), s.Height)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoad_InvalidValuesFailFast(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(`{"height": 0}`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero interval", func(s *Settings) { s.TickInterval = 0 }, true},
		{"negative interval", func(s *Settings) { s.TickInterval = -time.Millisecond }, true},
		{"zero width", func(s *Settings) { s.Width = 0 }, true},
		{"negative height", func(s *Settings) { s.Height = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
