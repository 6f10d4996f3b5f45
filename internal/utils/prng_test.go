package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-invaders/internal/utils"
	"go-space-invaders/internal/utils/utilstest"
)

func TestPRNGService_SameSeedSameSequence(t *testing.T) {
	a := utils.NewPRNGService(7)
	b := utils.NewPRNGService(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
	assert.Equal(t, int64(7), a.Seed())
}

func TestPRNGService_ZeroSeedUsesClock(t *testing.T) {
	s := utils.NewPRNGService(0)
	assert.NotZero(t, s.Seed())
}

func TestChooseWeighted(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		roll    int
		want    int
	}{
		{"empty table", nil, 0, -1},
		{"zero weights fall back to first", []int{0, 0}, 0, 0},
		{"first bucket", []int{1, 1, 1}, 0, 0},
		{"middle bucket", []int{1, 1, 1}, 1, 1},
		{"last bucket", []int{1, 1, 1}, 2, 2},
		{"heavy bucket", []int{1, 8, 1}, 8, 1},
		{"skips non-positive", []int{0, 2, -3, 2}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &utilstest.SequenceRand{Ints: []int{tt.roll}}
			assert.Equal(t, tt.want, utils.ChooseWeighted(r, tt.weights))
		})
	}
}

func TestCycleChannel(t *testing.T) {
	assert.Equal(t, uint8(255), utils.CycleChannel(0, 5000, false))
	assert.Equal(t, uint8(128), utils.CycleChannel(0, 5000, true))
}
