package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor follows one path until it leaves the scene or reaches MaxDepth.
// Each surface adds its emission (plus direct light, if enabled) weighted by
// the product of the scattering fractions before it.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	throughput := core.Fill(1.0)
	radiance := core.Vec3{}

	for depth := 0; ; depth++ {
		hit, isHit := s.RayCast(geometry.IntersectionQuery{Ray: ray, TMin: pt.config.TMin, TMax: pt.config.TMax})
		if !isHit {
			return radiance.Add(throughput.MultiplyVec(BackgroundGradient(ray)))
		}

		// Hard cutoff: no Russian roulette
		if depth >= pt.config.MaxDepth {
			return radiance
		}

		scatter := hit.Object.Scatter(scene.ScatteringQuery{
			RayIncoming: ray.Direction,
			Point:       hit.Result.Data.Point,
			Space:       scene.WorldSpace,
		}, sampler)

		contribution := scatter.Emission
		if pt.config.DirectLighting && !s.IsEmptyLights() {
			direct := s.DirectLighting(scatter.Point)
			contribution = contribution.Add(scatter.ScatteringFraction.MultiplyVec(direct))
		}

		radiance = radiance.Add(throughput.MultiplyVec(contribution))
		throughput = throughput.MultiplyVec(scatter.ScatteringFraction)
		ray = core.NewRay(scatter.Point, scatter.RayOutgoing)
	}
}

// BackgroundGradient blends white at the bottom to sky blue at the top by the
// vertical component of the normalized ray direction
func BackgroundGradient(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}
