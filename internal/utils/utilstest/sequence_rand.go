// Package utilstest holds test doubles for the utils package.
package utilstest

// SequenceRand is a scripted Rand for tests. Float64 and Intn replay their
// configured values in order and wrap around; an empty script yields zero.
type SequenceRand struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next scripted float.
func (r *SequenceRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[r.fi%len(r.Floats)]
	r.fi++
	return v
}

// Intn returns the next scripted int reduced modulo n.
func (r *SequenceRand) Intn(n int) int {
	if len(r.Ints) == 0 || n <= 0 {
		return 0
	}
	v := r.Ints[r.ii%len(r.Ints)]
	r.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
