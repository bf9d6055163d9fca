package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material.
// The fraction returned is the albedo regardless of angle.
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) Lambertian {
	return Lambertian{Albedo: albedo}
}

// Evaluate implements BsdfMapping
func (l Lambertian) Evaluate(query BsdfQuery) BsdfResult {
	return newResult(query, l.Albedo)
}

// LambertianSampler scatters around the normal: normal + a point in the unit ball
type LambertianSampler struct{}

// Sample implements BsdfQuerySampler
func (LambertianSampler) Sample(_ Lambertian, rayIncoming, normal, point core.Vec3, sampler core.Sampler) BsdfQuery {
	target := point.Add(normal).Add(sampler.UnitSphere())
	return BsdfQuery{
		RayIncoming: rayIncoming,
		RayOutgoing: target.Subtract(point),
		Point:       point,
		Normal:      normal,
	}
}
