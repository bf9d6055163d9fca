package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Space tags which coordinate frame a scattering query or result lives in
type Space int

const (
	ModelSpace Space = iota
	WorldSpace
)

func (s Space) String() string {
	if s == WorldSpace {
		return "world"
	}
	return "model"
}

// ScatteringQuery asks an object to scatter a ray arriving at a surface point
type ScatteringQuery struct {
	RayIncoming core.Vec3
	Point       core.Vec3
	Space       Space
}

// ScatteringResult is a sampled bounce plus the object's own emission
type ScatteringResult struct {
	RayIncoming        core.Vec3
	RayOutgoing        core.Vec3
	Point              core.Vec3
	Normal             core.Vec3
	ScatteringFraction core.Vec3
	Emission           core.Vec3
	Space              Space
}

// ModelSpaceObject is a primitive with a material and an emitter, defined in its
// own local frame. Implementations are immutable; all randomness comes from
// the sampler passed to Scatter.
type ModelSpaceObject interface {
	Intersect(query geometry.IntersectionQuery) geometry.IntersectionResult
	Center() core.Vec3
	Contains(point core.Vec3) bool
	Normal(point core.Vec3) (core.Vec3, bool)
	Scatter(query ScatteringQuery, sampler core.Sampler) ScatteringResult
	Emit(query lights.LightingQuery) lights.LightingResult
	BoundingBox() core.AABB
}

// GeometryObject pairs a geometry with a BSDF, its sampler and an emitter
type GeometryObject[G geometry.Geometry, B material.BsdfMapping] struct {
	geometry G
	bsdf     B
	sampler  material.BsdfQuerySampler[B]
	light    lights.LightMapping
}

// NewGeometryObject creates a model-space object. A nil light means NoLight.
func NewGeometryObject[G geometry.Geometry, B material.BsdfMapping](
	geom G, bsdf B, sampler material.BsdfQuerySampler[B], light lights.LightMapping,
) *GeometryObject[G, B] {
	if light == nil {
		light = lights.NoLight{}
	}
	return &GeometryObject[G, B]{geometry: geom, bsdf: bsdf, sampler: sampler, light: light}
}

func (o *GeometryObject[G, B]) Intersect(query geometry.IntersectionQuery) geometry.IntersectionResult {
	return o.geometry.Intersect(query)
}

func (o *GeometryObject[G, B]) Center() core.Vec3 {
	return o.geometry.Center()
}

func (o *GeometryObject[G, B]) Contains(point core.Vec3) bool {
	return o.geometry.Contains(point)
}

// Normal returns the outward unit normal when point lies on the surface
func (o *GeometryObject[G, B]) Normal(point core.Vec3) (core.Vec3, bool) {
	if !o.Contains(point) {
		return core.Vec3{}, false
	}
	return point.Subtract(o.geometry.Center()).Normalize(), true
}

func (o *GeometryObject[G, B]) BoundingBox() core.AABB {
	return o.geometry.BoundingBox()
}

// Scatter samples the BSDF at query.Point and evaluates the sampled direction
func (o *GeometryObject[G, B]) Scatter(query ScatteringQuery, sampler core.Sampler) ScatteringResult {
	normal := query.Point.Subtract(o.geometry.Center()).Normalize()
	bsdfQuery := o.sampler.Sample(o.bsdf, query.RayIncoming, normal, query.Point, sampler)
	bsdfResult := o.bsdf.Evaluate(bsdfQuery)
	emitted := o.light.Emit(lights.LightingQuery{RayIncoming: query.RayIncoming, Point: query.Point})

	return ScatteringResult{
		RayIncoming:        bsdfResult.RayIncoming,
		RayOutgoing:        bsdfResult.RayOutgoing,
		Point:              bsdfResult.Point,
		Normal:             bsdfResult.Normal,
		ScatteringFraction: bsdfResult.ScatteringFraction,
		Emission:           emitted.Radiance,
		Space:              query.Space,
	}
}

func (o *GeometryObject[G, B]) Emit(query lights.LightingQuery) lights.LightingResult {
	return o.light.Emit(query)
}

// NewLambertianSphere creates a diffuse sphere
func NewLambertianSphere(sphere geometry.Sphere, albedo core.Vec3) ModelSpaceObject {
	return NewGeometryObject[geometry.Sphere, material.Lambertian](sphere, material.NewLambertian(albedo), material.LambertianSampler{}, nil)
}

// NewMetalSphere creates a reflective sphere
func NewMetalSphere(sphere geometry.Sphere, albedo core.Vec3, fuzz float64) ModelSpaceObject {
	return NewGeometryObject[geometry.Sphere, material.Metal](sphere, material.NewMetal(albedo, fuzz), material.MetalSampler{}, nil)
}

// NewDielectricSphere creates a glass sphere
func NewDielectricSphere(sphere geometry.Sphere, refractiveIndex float64) ModelSpaceObject {
	return NewGeometryObject[geometry.Sphere, material.Dielectric](sphere, material.NewDielectric(refractiveIndex), material.DielectricSampler{}, nil)
}

// NewBlackBodySphere creates a near-perfect absorber that glows with emission
func NewBlackBodySphere(sphere geometry.Sphere, emission core.Vec3) ModelSpaceObject {
	return NewGeometryObject[geometry.Sphere, material.BlackBody](sphere, material.BlackBody{}, material.BlackBodySampler{}, lights.NewDiffuseLight(emission))
}

// NewEmissiveSphere creates a diffuse sphere that also emits a constant radiance
func NewEmissiveSphere(sphere geometry.Sphere, albedo, emission core.Vec3) ModelSpaceObject {
	return NewGeometryObject[geometry.Sphere, material.Lambertian](sphere, material.NewLambertian(albedo), material.LambertianSampler{}, lights.NewPointLight(emission))
}
