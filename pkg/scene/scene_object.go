package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/go-gl/mathgl/mgl64"
)

// SceneObject places a ModelSpaceObject in the world with an affine model matrix.
// Points and normals are mapped back with the forward matrix, so normals stay
// correct only for rotations, uniform scales and translations.
type SceneObject struct {
	object    ModelSpaceObject
	transform core.Transform
}

// NewSceneObject fails with core.ErrSingularTransform for a non-invertible matrix
func NewSceneObject(object ModelSpaceObject, modelMatrix mgl64.Mat4) (*SceneObject, error) {
	transform, err := core.NewTransform(modelMatrix)
	if err != nil {
		return nil, fmt.Errorf("scene object: %w", err)
	}
	return &SceneObject{object: object, transform: transform}, nil
}

// Object returns the model-space object
func (o *SceneObject) Object() ModelSpaceObject {
	return o.object
}

// ModelMatrix returns the forward model matrix
func (o *SceneObject) ModelMatrix() mgl64.Mat4 {
	return o.transform.Matrix()
}

// Transform returns the object's model transform
func (o *SceneObject) Transform() core.Transform {
	return o.transform
}

// Intersect intersects a world-space query. t is shared between frames since
// the model-space ray is the exact preimage of the world ray.
func (o *SceneObject) Intersect(query geometry.IntersectionQuery) geometry.IntersectionResult {
	modelQuery := geometry.IntersectionQuery{
		Ray:  o.transform.InverseRay(query.Ray),
		TMin: query.TMin,
		TMax: query.TMax,
	}

	result := o.object.Intersect(modelQuery)
	if result.IsMiss() {
		return result
	}

	return result.WithData(geometry.IntersectionData{
		T:      result.Data.T,
		Point:  o.transform.TransformPoint(result.Data.Point),
		Normal: o.transform.TransformVector(result.Data.Normal),
	})
}

// Scatter maps a world-space query to model space, scatters, and maps back
func (o *SceneObject) Scatter(query ScatteringQuery, sampler core.Sampler) ScatteringResult {
	modelQuery := ScatteringQuery{
		RayIncoming: o.transform.InverseVector(query.RayIncoming),
		Point:       o.transform.InversePoint(query.Point),
		Space:       ModelSpace,
	}

	result := o.object.Scatter(modelQuery, sampler)

	return ScatteringResult{
		RayIncoming:        o.transform.TransformVector(result.RayIncoming),
		RayOutgoing:        o.transform.TransformVector(result.RayOutgoing),
		Point:              o.transform.TransformPoint(result.Point),
		Normal:             o.transform.TransformVector(result.Normal),
		ScatteringFraction: result.ScatteringFraction,
		Emission:           result.Emission,
		Space:              WorldSpace,
	}
}

// Emit evaluates the object's emitter for a world-space query
func (o *SceneObject) Emit(query lights.LightingQuery) lights.LightingResult {
	result := o.object.Emit(lights.LightingQuery{
		RayIncoming: o.transform.InverseVector(query.RayIncoming),
		Point:       o.transform.InversePoint(query.Point),
	})
	return lights.LightingResult{
		RayIncoming: query.RayIncoming,
		Point:       query.Point,
		Radiance:    result.Radiance,
	}
}

// Center returns the model-space center mapped to world space
func (o *SceneObject) Center() core.Vec3 {
	return o.transform.TransformPoint(o.object.Center())
}

// BoundingBox returns the world-space bounds of the transformed model box
func (o *SceneObject) BoundingBox() core.AABB {
	return o.transform.TransformBox(o.object.BoundingBox())
}
