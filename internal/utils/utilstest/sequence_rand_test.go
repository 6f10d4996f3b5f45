package utilstest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-invaders/internal/utils"
)

var _ utils.Rand = (*SequenceRand)(nil)

func TestSequenceRand_Wraps(t *testing.T) {
	r := &SequenceRand{Floats: []float64{0.1, 0.9}, Ints: []int{5, -3}}
	assert.Equal(t, 0.1, r.Float64())
	assert.Equal(t, 0.9, r.Float64())
	assert.Equal(t, 0.1, r.Float64())
	assert.Equal(t, 1, r.Intn(4))
	assert.Equal(t, 3, r.Intn(4))
	assert.Equal(t, 0, (&SequenceRand{}).Intn(4))
}
