// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// levelsFile is the on-disk layout of a levels file.
type levelsFile struct {
	Levels []LevelDefinition `json:"levels"`
	Loot   []LootEntry       `json:"loot,omitempty"`
}

// LoadLevelPatterns reads a levels file and replaces LevelPatterns (and
// PickupLoot when the file lists loot). Nothing is replaced on error.
func LoadLevelPatterns(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read levels file: %w", err)
	}
	return ParseLevelPatterns(data)
}

// ParseLevelPatterns is LoadLevelPatterns for an in-memory document.
func ParseLevelPatterns(data []byte) (int, error) {
	var file levelsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to unmarshal levels: %w", err)
	}
	if len(file.Levels) == 0 {
		return 0, fmt.Errorf("%w: no levels", ErrInvalidLevel)
	}

	patterns := make(map[int]LevelDefinition, len(file.Levels))
	for _, def := range file.Levels {
		if def.Level < 1 {
			return 0, fmt.Errorf("%w: level number %d", ErrInvalidLevel, def.Level)
		}
		if !def.Shape.Valid() {
			return 0, fmt.Errorf("%w: level %d has unknown shape %q", ErrInvalidLevel, def.Level, def.Shape)
		}
		if def.Param < 1 {
			def.Param = 1
		}
		if def.Health < 0 {
			def.Health = 0
		}
		patterns[def.Level] = def
	}

	LevelPatterns = patterns
	if len(file.Loot) > 0 {
		PickupLoot = file.Loot
	}
	return len(patterns), nil
}
