package core

import (
	"math/rand"
)

// Sampler is the uniform random-number source threaded through every
// operation that consumes randomness. Implementations are not safe for
// concurrent use; give each worker its own.
type Sampler interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// UnitSphere returns a point uniformly distributed inside the unit ball
	UnitSphere() Vec3
	// UnitDisk returns a point uniformly distributed inside the unit disk with z = 0
	UnitDisk() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic stream
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Float64 returns a random float64 in [0, 1)
func (r *RandomSampler) Float64() float64 {
	return r.random.Float64()
}

// UnitSphere draws candidates from [-1,1]³ until one lands strictly inside the unit ball.
// Roughly half of all candidates are rejected.
func (r *RandomSampler) UnitSphere() Vec3 {
	for {
		p := NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64()).
			Multiply(2).
			Subtract(Fill(1))
		if p.Length() < 1.0 {
			return p
		}
	}
}

// UnitDisk draws candidates from [-1,1]² until one lands strictly inside the unit disk
func (r *RandomSampler) UnitDisk() Vec3 {
	for {
		p := NewVec3(2*r.random.Float64()-1, 2*r.random.Float64()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
