package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewSphere_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), radius); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %g: expected ErrInvalidRadius, got %v", radius, err)
		}
	}
}

func TestSphere_Intersect_ReferenceHit(t *testing.T) {
	sphere := UnitSphere()
	ray := core.NewRay(core.NewVec3(0, 0, 30), core.NewVec3(0, 0, -1))

	result := sphere.Intersect(IntersectionQuery{Ray: ray, TMin: 0.001, TMax: math.MaxFloat32})
	expected := NewHit(29, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))

	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

// sweepOrigins returns points on circles of the given radius in the xy, yz and zx planes
func sweepOrigins(pathRadius float64) []core.Vec3 {
	var origins []core.Vec3
	for i := 0; i <= 64; i++ {
		angle := float64(i) * math.Pi / 64
		c, s := pathRadius*math.Cos(angle), pathRadius*math.Sin(angle)
		origins = append(origins,
			core.NewVec3(c, s, 0),
			core.NewVec3(0, c, s),
			core.NewVec3(s, 0, c),
		)
	}
	return origins
}

func TestSphere_Intersect_RaysTowardCenterHit(t *testing.T) {
	sphere := UnitSphere()
	for _, origin := range sweepOrigins(2) {
		direction := sphere.Center().Subtract(origin).Normalize()
		query := IntersectionQuery{Ray: core.NewRay(origin, direction), TMin: 0.01, TMax: math.MaxFloat64}

		result := sphere.Intersect(query)
		if !result.IsHit() {
			t.Errorf("Ray from %v toward center: expected Hit, got %v", origin, result)
		}
	}
}

func TestSphere_Intersect_RaysAwayFromCenterMiss(t *testing.T) {
	sphere := UnitSphere()
	for _, origin := range sweepOrigins(2) {
		direction := origin.Subtract(sphere.Center()).Normalize()
		query := IntersectionQuery{Ray: core.NewRay(origin, direction), TMin: 0.01, TMax: math.MaxFloat64}

		result := sphere.Intersect(query)
		if !result.IsMiss() {
			t.Errorf("Ray from %v away from center: expected Miss, got %v", origin, result)
		}
		if result.Reason.Kind != HitBeforeMin {
			t.Errorf("Ray from %v: expected HitBeforeMin, got %v", origin, result.Reason.Kind)
		}
	}
}

func TestSphere_Intersect_SweepAlongXAxis(t *testing.T) {
	sphere := UnitSphere()
	const totalRays = 32

	for i := 1; i < totalRays; i++ {
		y := sphere.Radius() - float64(i)*sphere.Diameter()/totalRays
		ray := core.NewRay(core.NewVec3(3, y, 0), core.NewVec3(-1, 0, 0))
		if result := sphere.Intersect(DefaultQuery(ray)); !result.IsHit() {
			t.Errorf("y=%f: expected Hit, got %v", y, result)
		}
	}

	for _, y := range []float64{1.01, -1.01, 5} {
		ray := core.NewRay(core.NewVec3(3, y, 0), core.NewVec3(-1, 0, 0))
		result := sphere.Intersect(DefaultQuery(ray))
		if !result.IsMiss() || result.Reason.Kind != NoIntersection {
			t.Errorf("y=%f: expected Miss(NoIntersection), got %v", y, result)
		}
	}
}

func TestSphere_Intersect_Tangent(t *testing.T) {
	sphere := UnitSphere()
	// b = -3, a = 1, c = 9: the half-discriminant is exactly zero
	ray := core.NewRay(core.NewVec3(-3, 1, 0), core.NewVec3(1, 0, 0))

	result := sphere.Intersect(DefaultQuery(ray))
	if !result.IsTangent() {
		t.Fatalf("Expected Tangent, got %v", result)
	}
	if result.IsHit() {
		t.Error("Tangent result must not report IsHit")
	}
	if !result.IsHitOrTangent() {
		t.Error("Tangent result must report IsHitOrTangent")
	}
	if sphere.Intersects(DefaultQuery(ray)) {
		t.Error("Intersects must exclude tangent contacts")
	}
	if result.Data.T != 3 || !result.Data.Point.Equals(core.NewVec3(0, 1, 0)) || !result.Data.Normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Unexpected tangent data %+v", result.Data)
	}
}

func TestSphere_Intersect_IntervalSelection(t *testing.T) {
	sphere := UnitSphere()
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	tests := []struct {
		name       string
		tMin, tMax float64
		kind       ResultKind
		t          float64
		missKind   MissKind
	}{
		{"Nearer root", 0.001, 100, Hit, 4, 0},
		{"Falls back to farther root", 4.5, 100, Hit, 6, 0},
		{"Both roots behind", 7, 100, Miss, 0, HitBeforeMin},
		{"Both roots beyond", 0.001, 3, Miss, 0, HitBeforeMax},
		{"Interval between roots", 4.5, 5.5, Miss, 0, HitBeforeMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sphere.Intersect(IntersectionQuery{Ray: ray, TMin: tt.tMin, TMax: tt.tMax})
			if result.Kind != tt.kind {
				t.Fatalf("Expected %v, got %v", tt.kind, result)
			}
			if tt.kind == Hit && math.Abs(result.Data.T-tt.t) > 1e-12 {
				t.Errorf("Expected t=%f, got %f", tt.t, result.Data.T)
			}
			if tt.kind == Miss && result.Reason.Kind != tt.missKind {
				t.Errorf("Expected %v, got %v", tt.missKind, result.Reason.Kind)
			}
		})
	}
}

func TestSphere_Intersect_NormalIsUnit(t *testing.T) {
	sphere, err := NewSphere(core.NewVec3(1, -2, 0.5), 2.5)
	if err != nil {
		t.Fatal(err)
	}
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 500; i++ {
		origin := sampler.UnitSphere().Normalize().Multiply(10).Add(sphere.Center())
		target := sampler.UnitSphere().Multiply(sphere.Radius()).Add(sphere.Center())
		ray := core.NewRay(origin, target.Subtract(origin))

		result := sphere.Intersect(DefaultQuery(ray))
		if !result.IsHitOrTangent() {
			t.Fatalf("Ray aimed inside the sphere must hit: %v", result)
		}
		if math.Abs(result.Data.Normal.Length()-1) > 1e-5 {
			t.Errorf("Normal not unit length: %v (|n|=%f)", result.Data.Normal, result.Data.Normal.Length())
		}
		if !sphere.Contains(result.Data.Point) {
			t.Errorf("Hit point %v not on the surface", result.Data.Point)
		}
	}
}

func TestSphere_ContainsAndNormal(t *testing.T) {
	sphere := UnitSphere()

	if n, ok := sphere.Normal(core.NewVec3(0, 1, 0)); !ok || !n.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected normal (0,1,0), got %v ok=%v", n, ok)
	}
	if _, ok := sphere.Normal(core.NewVec3(0, 0.5, 0)); ok {
		t.Error("Interior point must not have a normal")
	}
	if sphere.Contains(core.NewVec3(2, 0, 0)) {
		t.Error("Exterior point reported as on the surface")
	}
}

func TestNewIntersectionQuery_Validation(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	for _, tc := range [][2]float64{{0, 1}, {-1, 1}, {2, 1}, {1, 1}} {
		if _, err := NewIntersectionQuery(ray, tc[0], tc[1]); !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("[%g, %g]: expected ErrInvalidInterval, got %v", tc[0], tc[1], err)
		}
	}
	if _, err := NewIntersectionQuery(ray, 1e-4, 10); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
