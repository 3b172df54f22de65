package ccanr

import "math/rand"

// rng is the solver's only source of nondeterminism: selecting a
// uniformly random clause from the unsat stack during the random-walk
// picker tier. Instance-local, seeded once per Run, never shared across
// solver instances.
type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) rng {
	return rng{r: rand.New(rand.NewSource(seed))}
}

// intn returns a value in [0, n).
func (g rng) intn(n int) int {
	return g.r.Intn(n)
}
