package nn

import "math/rand"

// Initializer produces initial parameter values.
type Initializer interface {
	// Next returns the next initial value.
	Next() float64
}

// Uniform draws values from U(lo, hi).
type Uniform struct {
	lo, hi float64
	rng    *rand.Rand
}

// NewUniform creates a uniform initializer seeded with seed.
func NewUniform(lo, hi float64, seed int64) *Uniform {
	return &Uniform{
		lo: lo,
		hi: hi,
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns a value in [lo, hi).
func (u *Uniform) Next() float64 {
	return u.lo + u.rng.Float64()*(u.hi-u.lo)
}

// Constant returns the same value every time.
type Constant float64

// Next returns c.
func (c Constant) Next() float64 {
	return float64(c)
}

// defaultInit draws from U(-1, 1).
func defaultInit(seed int64) Initializer {
	return NewUniform(-1, 1, seed)
}
