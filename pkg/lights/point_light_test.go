package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

func TestScenePointLight_Position(t *testing.T) {
	tests := []struct {
		name     string
		matrix   mgl64.Mat4
		expected core.Vec3
	}{
		{"identity", mgl64.Ident4(), core.Vec3{}},
		{"translated", mgl64.Translate3D(1, -2, 3), core.NewVec3(1, -2, 3)},
		{"scaled then translated", mgl64.Translate3D(0, 5, 0).Mul4(mgl64.Scale3D(4, 4, 4)), core.NewVec3(0, 5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light, err := NewScenePointLight(NewPointLight(core.Fill(10)), tt.matrix)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !light.Position().ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected position %v, got %v", tt.expected, light.Position())
			}
			if light.Emission() != core.Fill(10) {
				t.Errorf("Expected emission 10, got %v", light.Emission())
			}
		})
	}
}

func TestScenePointLight_SingularMatrix(t *testing.T) {
	_, err := NewScenePointLight(NewPointLight(core.Fill(1)), mgl64.Scale3D(1, 0, 1))
	if !errors.Is(err, core.ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}
}

func TestScenePointLight_Sample(t *testing.T) {
	light, err := NewScenePointLight(NewPointLight(core.Fill(5)), mgl64.Translate3D(0, 4, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sample := light.Sample(core.NewVec3(0, 1, 0))
	if math.Abs(sample.Distance-3) > 1e-12 {
		t.Errorf("Expected distance 3, got %f", sample.Distance)
	}
	if !sample.Direction.ApproxEquals(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected direction +Y, got %v", sample.Direction)
	}
}

func TestDirectIrradiance(t *testing.T) {
	got := DirectIrradiance(core.Fill(4*math.Pi), 2)
	if !got.ApproxEquals(core.Fill(0.25), 1e-12) {
		t.Errorf("Expected 0.25, got %v", got)
	}
	if !DirectIrradiance(core.Fill(1), 0).IsZero() {
		t.Error("Expected zero irradiance at zero distance")
	}
}

func TestEmitters(t *testing.T) {
	query := LightingQuery{RayIncoming: core.NewVec3(0, 0, -1), Point: core.NewVec3(1, 2, 3)}

	tests := []struct {
		name     string
		light    LightMapping
		expected core.Vec3
	}{
		{"no light", NoLight{}, core.Vec3{}},
		{"diffuse", NewDiffuseLight(core.NewVec3(1, 2, 3)), core.NewVec3(1, 2, 3)},
		{"point", NewPointLight(core.Fill(7)), core.Fill(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.light.Emit(query)
			if result.Radiance != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result.Radiance)
			}
			if result.Point != query.Point || result.RayIncoming != query.RayIncoming {
				t.Error("Emit must echo the query")
			}
		})
	}
}
