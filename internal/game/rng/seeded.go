package rng

import "math/rand"

// seededSource implements Source using a seeded math/rand stream, giving
// deterministic draws for tests and run replays.
//
// NOT safe for concurrent use: the engine is single-writer, and test code
// drives it from one goroutine.
type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a deterministic Source seeded with seed.
// Two sources built from the same seed produce identical draw sequences.
func NewSeededSource(seed int64) Source {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n) from the seeded stream.
//
// Precondition: n > 0. Panics with "rng: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return s.r.Intn(n)
}

// Float64 returns a random float64 in [0, 1) from the seeded stream.
func (s *seededSource) Float64() float64 {
	return s.r.Float64()
}
