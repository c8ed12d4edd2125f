package vivid

import "math/bits"

// Rand is a deterministic pseudo-random float generator derived from an
// arbitrary string. Its output sequence is a pure function of the seed text:
// two Rands built from the same string produce identical sequences across
// runs and platforms.
//
// A Rand is owned by exactly one generation. It is not safe for concurrent
// use and is never reused once the generation completes.
type Rand struct {
	state uint32
}

// Seed hashing constants. The accumulator starts at the FNV-1a offset basis
// and folds each code point in with a wrap-around multiply and a 13-bit
// rotation. All arithmetic is unsigned 32-bit; overflow is part of the design.
const (
	seedBasis = 0x811C9DC5
	seedPrime = 0x01000193 // odd
	seedRot   = 13
)

// mulberryIncrement advances the generator state on every draw.
const mulberryIncrement = 0x6D2B79F5

// NewRand creates a generator seeded from seedText.
func NewRand(seedText string) *Rand {
	return &Rand{state: hashSeed(seedText)}
}

// hashSeed reduces seedText to the generator's initial 32-bit state.
func hashSeed(seedText string) uint32 {
	acc := uint32(seedBasis)
	for _, r := range seedText {
		acc ^= uint32(r)
		acc *= seedPrime
		acc = bits.RotateLeft32(acc, seedRot)
	}
	return acc
}

// Next returns the next pseudo-random value in [0, 1) and advances the
// internal state.
func (r *Rand) Next() float64 {
	r.state += mulberryIncrement
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / (1 << 32)
}

// Range returns a value in [min, max). Callers must pass min < max; every
// call site in the pipeline does, so the precondition is checked by tests
// rather than at runtime.
func (r *Rand) Range(min, max float64) float64 {
	return min + r.Next()*(max-min)
}
