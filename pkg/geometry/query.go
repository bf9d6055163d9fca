package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidInterval is returned for a query whose interval is empty or starts at or below zero
var ErrInvalidInterval = errors.New("invalid intersection interval")

// IntersectionQuery is a ray plus the open interval of admissible hit parameters
type IntersectionQuery struct {
	Ray  core.Ray
	TMin float64
	TMax float64
}

// NewIntersectionQuery validates 0 < tMin < tMax
func NewIntersectionQuery(ray core.Ray, tMin, tMax float64) (IntersectionQuery, error) {
	if !(tMin > 0) || !(tMin < tMax) {
		return IntersectionQuery{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, tMin, tMax)
	}
	return IntersectionQuery{Ray: ray, TMin: tMin, TMax: tMax}, nil
}

// DefaultQuery builds a query over [core.DefaultTMin, core.DefaultTMax]
func DefaultQuery(ray core.Ray) IntersectionQuery {
	return IntersectionQuery{Ray: ray, TMin: core.DefaultTMin, TMax: core.DefaultTMax}
}

// ResultKind tags an IntersectionResult
type ResultKind int

const (
	Miss ResultKind = iota
	Hit
	Tangent
)

func (k ResultKind) String() string {
	switch k {
	case Hit:
		return "Hit"
	case Tangent:
		return "Tangent"
	default:
		return "Miss"
	}
}

// MissKind says why a query produced no intersection
type MissKind int

const (
	NoIntersection MissKind = iota
	HitBeforeMin
	HitBeforeMax
)

func (k MissKind) String() string {
	switch k {
	case HitBeforeMin:
		return "HitBeforeMin"
	case HitBeforeMax:
		return "HitBeforeMax"
	default:
		return "NoIntersection"
	}
}

// MissReason explains a miss. TGot is the rejected root for the HitBefore kinds.
type MissReason struct {
	Kind MissKind
	TGot float64
}

// IntersectionData describes where a ray met a surface
type IntersectionData struct {
	T      float64
	Point  core.Vec3
	Normal core.Vec3 // unit length, pointing out of the surface
}

// IntersectionResult is a tagged variant: Data is meaningful for Hit and
// Tangent, Reason for Miss.
type IntersectionResult struct {
	Kind   ResultKind
	Data   IntersectionData
	Reason MissReason
}

// NewHit creates a transversal hit
func NewHit(t float64, point, normal core.Vec3) IntersectionResult {
	return IntersectionResult{Kind: Hit, Data: IntersectionData{T: t, Point: point, Normal: normal}}
}

// NewTangent creates a grazing hit
func NewTangent(t float64, point, normal core.Vec3) IntersectionResult {
	return IntersectionResult{Kind: Tangent, Data: IntersectionData{T: t, Point: point, Normal: normal}}
}

// NewMiss creates a miss
func NewMiss(reason MissReason) IntersectionResult {
	return IntersectionResult{Kind: Miss, Reason: reason}
}

func (r IntersectionResult) IsHit() bool     { return r.Kind == Hit }
func (r IntersectionResult) IsTangent() bool { return r.Kind == Tangent }
func (r IntersectionResult) IsMiss() bool    { return r.Kind == Miss }

// IsHitOrTangent reports whether the result carries usable surface data
func (r IntersectionResult) IsHitOrTangent() bool {
	return r.Kind == Hit || r.Kind == Tangent
}

// WithData returns a copy of r with the surface data replaced, keeping the tag
func (r IntersectionResult) WithData(data IntersectionData) IntersectionResult {
	r.Data = data
	return r
}

func (r IntersectionResult) String() string {
	if r.Kind == Miss {
		if r.Reason.Kind == NoIntersection {
			return "Miss(NoIntersection)"
		}
		return fmt.Sprintf("Miss(%s, t=%g)", r.Reason.Kind, r.Reason.TGot)
	}
	return fmt.Sprintf("%s(t=%g, point=%v, normal=%v)", r.Kind, r.Data.T, r.Data.Point, r.Data.Normal)
}
