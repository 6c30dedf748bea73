package ornament

import (
	"math"
	"math/rand/v2"
)

// Rand is the randomness an ornament draws its decoration from.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG-backed source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform value in [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// chance reports true with probability p.
func chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// channel returns a color channel uniform in [lo, hi].
func channel(r Rand, lo, hi uint8) uint8 {
	v := math.Floor(float64(lo) + r.Float64()*float64(int(hi)-int(lo)+1))
	return uint8(min(v, float64(hi)))
}
