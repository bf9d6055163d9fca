package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidRadius is returned when a sphere radius is not a positive finite number
var ErrInvalidRadius = errors.New("sphere radius must be positive and finite")

// surfaceTolerance is how far from the surface a point may be and still count as on it
const surfaceTolerance = 1e-4

// Geometry is an implicit surface defined in its own model space
type Geometry interface {
	Intersect(query IntersectionQuery) IntersectionResult
	Center() core.Vec3
	Contains(point core.Vec3) bool
	BoundingBox() core.AABB
}

// Sphere is the only primitive. It is immutable after construction.
type Sphere struct {
	center core.Vec3
	radius float64
}

// NewSphere creates a new model-space sphere
func NewSphere(center core.Vec3, radius float64) (Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Sphere{}, fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}
	return Sphere{center: center, radius: radius}, nil
}

// UnitSphere is the canonical sphere of radius 1 at the origin
func UnitSphere() Sphere {
	return Sphere{center: core.NewVec3(0, 0, 0), radius: 1}
}

func (s Sphere) Center() core.Vec3 { return s.center }
func (s Sphere) Radius() float64   { return s.radius }
func (s Sphere) Diameter() float64 { return s.radius + s.radius }

// Intersect solves a·t² + 2b·t + c = 0 with the half-discriminant b² − a·c.
// The nearer admissible root wins. A zero discriminant is reported as Tangent.
func (s Sphere) Intersect(query IntersectionQuery) IntersectionResult {
	ray := query.Ray
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := b*b - a*c
	if discriminant < 0 || a == 0 {
		return NewMiss(MissReason{Kind: NoIntersection})
	}

	sqrtD := math.Sqrt(discriminant)
	tNear := (-b - sqrtD) / a
	tFar := (-b + sqrtD) / a

	for _, root := range [2]float64{tNear, tFar} {
		if root > query.TMin && root < query.TMax {
			point := ray.At(root)
			normal := point.Subtract(s.center).Divide(s.radius)
			if discriminant == 0 {
				return NewTangent(root, point, normal)
			}
			return NewHit(root, point, normal)
		}
	}

	if tFar <= query.TMin {
		return NewMiss(MissReason{Kind: HitBeforeMin, TGot: tFar})
	}
	if tNear >= query.TMax {
		return NewMiss(MissReason{Kind: HitBeforeMax, TGot: tNear})
	}
	return NewMiss(MissReason{Kind: HitBeforeMax, TGot: tFar})
}

// Contains reports whether point lies on the sphere's surface
func (s Sphere) Contains(point core.Vec3) bool {
	distance := point.Subtract(s.center).Length()
	return math.Abs(distance-s.radius) <= surfaceTolerance*max(1, s.radius)
}

// Normal returns the outward unit normal at a surface point
func (s Sphere) Normal(point core.Vec3) (core.Vec3, bool) {
	if !s.Contains(point) {
		return core.Vec3{}, false
	}
	return point.Subtract(s.center).Normalize(), true
}

// BoundingBox returns the model-space box around the sphere
func (s Sphere) BoundingBox() core.AABB {
	r := core.Fill(s.radius)
	return core.NewAABB(s.center.Subtract(r), s.center.Add(r))
}

// Intersects reports a transversal hit. Grazing (Tangent) contacts do not count.
func (s Sphere) Intersects(query IntersectionQuery) bool {
	return s.Intersect(query).IsHit()
}
