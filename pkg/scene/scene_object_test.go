package scene

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/go-gl/mathgl/mgl64"
)

func unitLambertian(t *testing.T) ModelSpaceObject {
	t.Helper()
	return NewLambertianSphere(geometry.UnitSphere(), core.NewVec3(0.5, 0.5, 0.5))
}

func TestNewSceneObject_SingularMatrix(t *testing.T) {
	_, err := NewSceneObject(unitLambertian(t), mgl64.Scale3D(0, 1, 1))
	if !errors.Is(err, core.ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}
}

func TestSceneObject_IdentityMatchesModelSpace(t *testing.T) {
	object, err := NewSceneObject(unitLambertian(t), mgl64.Ident4())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 30), core.NewVec3(0, 0, -1))
	query, err := geometry.NewIntersectionQuery(ray, 0.001, math.MaxFloat64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := object.Intersect(query)
	if !result.IsHit() {
		t.Fatalf("Expected Hit, got %v", result)
	}
	if result.Data.T != 29 || !result.Data.Point.Equals(core.NewVec3(0, 0, 1)) || !result.Data.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Unexpected hit data %+v", result.Data)
	}
}

func TestSceneObject_CameraReferenceHit(t *testing.T) {
	center := core.NewVec3(4, 5, 6)
	object, err := NewSceneObject(unitLambertian(t), core.Translation(center))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	camera := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(-4, -5, 0),
		LookAt:      center,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
	})
	ray := core.NewRay(camera.Position(), camera.Forward())

	result := object.Intersect(geometry.DefaultQuery(ray))
	if !result.IsHit() {
		t.Fatalf("Expected Hit, got %v", result)
	}
	if math.Abs(result.Data.T-13.142121) > 1e-4 {
		t.Errorf("Expected t ≈ 13.142121, got %f", result.Data.T)
	}

	expectedNormal := camera.Forward().Negate()
	expectedPoint := center.Add(expectedNormal)
	if !result.Data.Point.ApproxEquals(expectedPoint, 1e-4) {
		t.Errorf("Expected point %v, got %v", expectedPoint, result.Data.Point)
	}
	if !result.Data.Normal.ApproxEquals(expectedNormal, 1e-4) {
		t.Errorf("Expected normal %v, got %v", expectedNormal, result.Data.Normal)
	}
	if !object.Center().ApproxEquals(center, 1e-12) {
		t.Errorf("Expected center %v, got %v", center, object.Center())
	}
}

func TestSceneObject_WorldModelRoundTrip(t *testing.T) {
	model := unitLambertian(t)
	matrix := core.Compose(
		core.Translation(core.NewVec3(1, -2, 3)),
		core.Rotation(math.Pi/5, core.NewVec3(1, 1, 0)),
		core.UniformScaling(2.5),
	)
	object, err := NewSceneObject(model, matrix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	random := rand.New(rand.NewSource(42))
	hits := 0
	for i := 0; i < 200; i++ {
		origin := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		target := object.Center().Add(core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5))
		ray := core.NewRay(origin, target.Subtract(origin))

		world := object.Intersect(geometry.DefaultQuery(ray))
		if !world.IsHitOrTangent() {
			continue
		}
		hits++

		modelResult := model.Intersect(geometry.DefaultQuery(object.Transform().InverseRay(ray)))
		if !modelResult.IsHitOrTangent() {
			t.Fatalf("Model-space query missed where world-space hit: %v", world)
		}
		back := object.Transform().InversePoint(world.Data.Point)
		if !back.ApproxEquals(modelResult.Data.Point, 1e-9) {
			t.Fatalf("Round trip point %v, model point %v", back, modelResult.Data.Point)
		}
		if math.Abs(world.Data.T-modelResult.Data.T) > 1e-12 {
			t.Fatalf("World t %f differs from model t %f", world.Data.T, modelResult.Data.T)
		}
	}
	if hits == 0 {
		t.Fatal("Expected at least one hit")
	}
}

func TestSceneObject_ScatterLambertian(t *testing.T) {
	object, err := NewSceneObject(unitLambertian(t), core.Translation(core.NewVec3(0, 2, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sampler := core.NewSeededSampler(42)

	query := ScatteringQuery{RayIncoming: core.NewVec3(0, -1, 0), Point: core.NewVec3(0, 3, 0), Space: WorldSpace}
	for i := 0; i < 50; i++ {
		result := object.Scatter(query, sampler)
		if result.ScatteringFraction != core.NewVec3(0.5, 0.5, 0.5) {
			t.Fatalf("Expected fraction 0.5, got %v", result.ScatteringFraction)
		}
		if result.Space != WorldSpace {
			t.Fatalf("Expected world-space result, got %v", result.Space)
		}
		if !result.Point.ApproxEquals(query.Point, 1e-12) {
			t.Fatalf("Expected point %v, got %v", query.Point, result.Point)
		}
		if !result.Normal.ApproxEquals(core.NewVec3(0, 1, 0), 1e-12) {
			t.Fatalf("Expected normal +Y, got %v", result.Normal)
		}
		if !result.Emission.IsZero() {
			t.Fatalf("Expected no emission, got %v", result.Emission)
		}
	}
}

func TestSceneObject_ScatterAndEmitEmissive(t *testing.T) {
	emission := core.NewVec3(1, 2, 3)
	model := NewEmissiveSphere(geometry.UnitSphere(), core.NewVec3(0.1, 0.5, 0.4), emission)
	object, err := NewSceneObject(model, core.Translation(core.NewVec3(5, 0, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := object.Scatter(ScatteringQuery{RayIncoming: core.NewVec3(1, 0, 0), Point: core.NewVec3(4, 0, 0)}, core.NewSeededSampler(1))
	if result.Emission != emission {
		t.Errorf("Expected emission %v, got %v", emission, result.Emission)
	}

	emitted := object.Emit(lights.LightingQuery{RayIncoming: core.NewVec3(1, 0, 0), Point: core.NewVec3(4, 0, 0)})
	if emitted.Radiance != emission {
		t.Errorf("Expected radiance %v, got %v", emission, emitted.Radiance)
	}
}

func TestGeometryObject_Normal(t *testing.T) {
	sphere, err := geometry.NewSphere(core.Vec3{}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	object := NewMetalSphere(sphere, core.Fill(0.9), 0)

	normal, ok := object.Normal(core.NewVec3(0, 0, 2))
	if !ok || !normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected +Z normal on surface, got %v %v", normal, ok)
	}
	if _, ok := object.Normal(core.NewVec3(0, 0, 1)); ok {
		t.Error("Expected no normal for an interior point")
	}
}
