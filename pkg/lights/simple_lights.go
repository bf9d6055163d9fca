package lights

import "github.com/df07/go-pathtracer/pkg/core"

// NoLight emits nothing
type NoLight struct{}

// Emit implements LightMapping
func (NoLight) Emit(query LightingQuery) LightingResult {
	return LightingResult{RayIncoming: query.RayIncoming, Point: query.Point}
}

// DiffuseLight emits a constant radiance in every direction
type DiffuseLight struct {
	Emission core.Vec3
}

// NewDiffuseLight creates a new diffuse emitter
func NewDiffuseLight(emission core.Vec3) DiffuseLight {
	return DiffuseLight{Emission: emission}
}

// Emit implements LightMapping
func (l DiffuseLight) Emit(query LightingQuery) LightingResult {
	return LightingResult{RayIncoming: query.RayIncoming, Point: query.Point, Radiance: l.Emission}
}

// PointLight emits a constant radiance. Attached to an object it acts like a
// DiffuseLight; placed in a scene with a model matrix it becomes a ScenePointLight.
type PointLight struct {
	Emission core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(emission core.Vec3) PointLight {
	return PointLight{Emission: emission}
}

// Emit implements LightMapping
func (l PointLight) Emit(query LightingQuery) LightingResult {
	return LightingResult{RayIncoming: query.RayIncoming, Point: query.Point, Radiance: l.Emission}
}
