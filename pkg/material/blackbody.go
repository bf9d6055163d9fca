package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// blackBodyFraction is the near-zero throughput a black body lets through
const blackBodyFraction = 0.001

// BlackBody absorbs almost everything. Paired with an emitter it models a light source.
type BlackBody struct{}

// Evaluate implements BsdfMapping
func (BlackBody) Evaluate(query BsdfQuery) BsdfResult {
	return newResult(query, core.Fill(blackBodyFraction))
}

// BlackBodySampler continues the ray unchanged
type BlackBodySampler struct{}

// Sample implements BsdfQuerySampler
func (BlackBodySampler) Sample(_ BlackBody, rayIncoming, normal, point core.Vec3, _ core.Sampler) BsdfQuery {
	return BsdfQuery{
		RayIncoming: rayIncoming,
		RayOutgoing: rayIncoming,
		Point:       point,
		Normal:      normal,
	}
}
