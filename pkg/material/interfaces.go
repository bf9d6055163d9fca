package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// BsdfQuery is one scattering event: the incoming direction, the sampled
// outgoing direction, and the surface point and normal. Inside a model-space
// object all four are in model space.
type BsdfQuery struct {
	RayIncoming core.Vec3
	RayOutgoing core.Vec3
	Point       core.Vec3
	Normal      core.Vec3
}

// BsdfResult echoes the query and adds the per-channel throughput multiplier
type BsdfResult struct {
	RayIncoming        core.Vec3
	RayOutgoing        core.Vec3
	Point              core.Vec3
	Normal             core.Vec3
	ScatteringFraction core.Vec3
}

// newResult copies the query into a result with the given fraction
func newResult(query BsdfQuery, fraction core.Vec3) BsdfResult {
	return BsdfResult{
		RayIncoming:        query.RayIncoming,
		RayOutgoing:        query.RayOutgoing,
		Point:              query.Point,
		Normal:             query.Normal,
		ScatteringFraction: fraction,
	}
}

// BsdfMapping evaluates a material for a fully specified query.
// Evaluate is deterministic and has no side effects.
type BsdfMapping interface {
	Evaluate(query BsdfQuery) BsdfResult
}

// BsdfQuerySampler draws an outgoing direction for a material, consuming randomness
type BsdfQuerySampler[B BsdfMapping] interface {
	Sample(bsdf B, rayIncoming, normal, point core.Vec3, sampler core.Sampler) BsdfQuery
}
