package engine

// Rand is the source of uniform random integers used by the initial
// shuffles. *math/rand.Rand satisfies it; tests inject fixed sources.
type Rand interface {
	// Intn returns a uniform random int in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// shuffle performs an in-place Fisher-Yates shuffle: indices are visited
// high to low and swapped with a uniformly chosen lower-or-equal index.
func shuffle[T any](rng Rand, s []T) {
	for i := len(s) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
