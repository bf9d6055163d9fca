package lights

import "github.com/df07/go-pathtracer/pkg/core"

// LightingQuery asks an emitter for the radiance leaving a point toward a ray
type LightingQuery struct {
	RayIncoming core.Vec3
	Point       core.Vec3
}

// LightingResult echoes the query and adds the emitted radiance
type LightingResult struct {
	RayIncoming core.Vec3
	Point       core.Vec3
	Radiance    core.Vec3
}

// LightMapping is anything that can emit. Emit is deterministic.
type LightMapping interface {
	Emit(query LightingQuery) LightingResult
}

// LightSample describes a point light as seen from a shading point
type LightSample struct {
	Point     core.Vec3 // Position of the light
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	Emission  core.Vec3 // Emitted power of the light
}
