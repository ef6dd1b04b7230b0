// Package garden builds the procedural geometry for the valentine garden
// scene: the rose organism, the instanced flower field, the falling hearts
// and the animation state that drives them. Everything here is pure CPU-side
// construction; rendering lives in internal/engine/scene.
package garden

// Rand is a deterministic pseudo-random stream seeded from a 32-bit integer.
// Two streams created with the same seed produce identical output for the
// same call order, which keeps the field layout and rose shape reproducible
// across sessions. The mixing function is mulberry32.
type Rand struct {
	state uint32
}

// NewRand creates a stream seeded with the given value.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next returns the next value in [0, 1).
func (r *Rand) Next() float32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	// Keep only the top 24 bits: float32 has a 24-bit mantissa, and
	// dividing the full 32-bit word by 2^32 rounds up to exactly 1.0 for
	// the largest outputs, breaking the half-open interval.
	return float32(z>>8) * (1.0 / (1 << 24))
}

// Range returns a value in [min, max).
func (r *Rand) Range(min, max float32) float32 {
	return min + r.Next()*(max-min)
}

// Intn returns an integer in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.Next() * float32(n))
}

// Pick returns a random element of items. Panics on an empty slice, matching
// the contract that callers only pass configured, non-empty palettes.
func Pick[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}
