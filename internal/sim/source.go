package sim

import (
	"crypto/rand"
	mrand "math/rand/v2"
)

// Source is a uniform integer generator. *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a ChaCha8 generator seeded from crypto/rand.
func NewSource() *mrand.Rand {
	var seed [32]byte
	_, _ = rand.Read(seed[:])
	return mrand.New(mrand.NewChaCha8(seed))
}

// NewSeededSource returns a PCG generator for reproducible runs.
func NewSeededSource(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SourceFor returns NewSeededSource(seed) for non-zero seeds and
// NewSource otherwise.
func SourceFor(seed uint64) *mrand.Rand {
	if seed == 0 {
		return NewSource()
	}
	return NewSeededSource(seed)
}
