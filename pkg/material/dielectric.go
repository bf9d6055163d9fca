package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a clear material like glass or water.
// It never absorbs: the fraction is always white.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) Dielectric {
	return Dielectric{RefractiveIndex: refractiveIndex}
}

// Evaluate implements BsdfMapping
func (d Dielectric) Evaluate(query BsdfQuery) BsdfResult {
	return newResult(query, core.Fill(1.0))
}

// DielectricSampler chooses between reflection and refraction with Schlick's
// approximation. The returned query carries the normal facing the incoming ray.
type DielectricSampler struct{}

// Sample implements BsdfQuerySampler
func (DielectricSampler) Sample(d Dielectric, rayIncoming, normal, point core.Vec3, sampler core.Sampler) BsdfQuery {
	var outwardNormal core.Vec3
	var niOverNt, cosine float64

	dot := rayIncoming.Dot(normal)
	if dot > 0 {
		// leaving the material
		outwardNormal = normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dot / rayIncoming.Length()
	} else {
		outwardNormal = normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dot / rayIncoming.Length()
	}

	var outgoing core.Vec3
	if refracted, ok := Refract(rayIncoming, outwardNormal, niOverNt); ok {
		if sampler.Float64() < Schlick(cosine, d.RefractiveIndex) {
			outgoing = Reflect(rayIncoming, normal)
		} else {
			outgoing = refracted
		}
	} else {
		// total internal reflection
		outgoing = Reflect(rayIncoming, normal)
	}

	return BsdfQuery{
		RayIncoming: rayIncoming,
		RayOutgoing: outgoing,
		Point:       point,
		Normal:      outwardNormal,
	}
}

// Reflect mirrors v about the plane with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Reflect(n)
}

// Refract bends v through a surface with normal n. v is normalized first.
// The second return is false under total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick's approximation for reflectance
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
