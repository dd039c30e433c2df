// Package rng provides the randomness abstraction for the labyrinth engine.
// All game randomness (door generation, shuffles, event rolls) routes through
// a Source so it can be swapped for a deterministic stream in tests and replays.
package rng

// Source is the randomness provider for the game engine.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Float64 returns a random float64 in [0, 1).
	Float64() float64
}

// UniformInt returns a uniform random int in [min, max], inclusive on both
// bounds. Bounds are swapped when min > max; when equal, min is returned
// without consuming randomness.
//
// Postcondition: min <= result <= max (after any bound swap).
func UniformInt(src Source, min, max int) int {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Shuffle performs a uniform Fisher-Yates shuffle of n elements using swap.
//
// Precondition: swap must exchange elements i and j of the underlying sequence.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}
