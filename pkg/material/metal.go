package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Evaluate implements BsdfMapping
func (m Metal) Evaluate(query BsdfQuery) BsdfResult {
	return newResult(query, m.Albedo)
}

// MetalSampler reflects about the normal and perturbs by Fuzzness
type MetalSampler struct{}

// Sample implements BsdfQuerySampler
func (MetalSampler) Sample(m Metal, rayIncoming, normal, point core.Vec3, sampler core.Sampler) BsdfQuery {
	reflected := Reflect(rayIncoming, normal)
	if m.Fuzzness > 0 {
		reflected = reflected.Add(sampler.UnitSphere().Multiply(m.Fuzzness))
	}
	return BsdfQuery{
		RayIncoming: rayIncoming,
		RayOutgoing: reflected,
		Point:       point,
		Normal:      normal,
	}
}
