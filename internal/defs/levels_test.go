package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		level int
		want  LevelDefinition
	}{
		{1, LevelPatterns[1]},
		{0, LevelPatterns[1]},
		{-4, LevelPatterns[1]},
		{6, LevelDefinition{Level: 6, Shape: ShapeMarch, Param: 2, Health: 3}},
		{14, LevelDefinition{Level: 14, Shape: ShapeTableau, Param: 14}},
		{15, LevelDefinition{Level: 15, Shape: ShapeBox, Param: 3, Health: 15}},
		{99, LevelDefinition{Level: 99, Shape: ShapeBox, Param: 3, Health: 99}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lookup(tt.level), "level %d", tt.level)
	}
}

func TestLevelPatternsUseKnownShapes(t *testing.T) {
	for level, def := range LevelPatterns {
		assert.True(t, def.Shape.Valid(), "level %d", level)
		assert.Equal(t, level, def.Level)
		assert.GreaterOrEqual(t, def.Param, 1, "level %d", level)
	}
}

func TestTableauGridIsRectangular(t *testing.T) {
	require.Len(t, TableauGrid, 11)
	for _, row := range TableauGrid {
		assert.Len(t, row, 13)
	}
}

// restoreTables puts the built-in tables back after a loader test.
func restoreTables(t *testing.T) {
	levels, loot := LevelPatterns, PickupLoot
	t.Cleanup(func() {
		LevelPatterns, PickupLoot = levels, loot
	})
}

func TestParseLevelPatterns(t *testing.T) {
	t.Run("replaces the table", func(t *testing.T) {
		restoreTables(t)
		n, err := ParseLevelPatterns([]byte(`{
			"levels": [
				{"level": 1, "shape": "wave", "param": 2},
				{"level": 2, "shape": "box", "param": 0, "health": 4}
			],
			"loot": [{"upgrade": "shields", "weight": 3}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, ShapeWave, Lookup(1).Shape)
		assert.Equal(t, 1, Lookup(2).Param, "param is raised to 1")
		assert.Equal(t, 3, LootWeight("shields"))
		assert.Equal(t, 0, LootWeight("speed"))
		assert.Equal(t, 3, Lookup(3).Health, "fallback past the loaded table")
	})

	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `levels`},
		{"empty", `{"levels": []}`},
		{"bad level", `{"levels": [{"level": 0, "shape": "box", "param": 1}]}`},
		{"bad shape", `{"levels": [{"level": 1, "shape": "spiral", "param": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreTables(t)
			before := LevelPatterns
			_, err := ParseLevelPatterns([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, before, LevelPatterns)
		})
	}

	t.Run("invalid level is a sentinel", func(t *testing.T) {
		restoreTables(t)
		_, err := ParseLevelPatterns([]byte(`{"levels": []}`))
		assert.ErrorIs(t, err, ErrInvalidLevel)
	})
}

func TestLoadLevelPatterns(t *testing.T) {
	restoreTables(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"levels": [{"level": 3, "shape": "tableau", "param": 1}]}`), 0o644))

	n, err := LoadLevelPatterns(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, ShapeTableau, Lookup(3).Shape)

	_, err = LoadLevelPatterns(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
