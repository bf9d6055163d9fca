package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectric_FractionIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	query := DielectricSampler{}.Sample(glass, core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0), core.Vec3{}, sampler)
	result := glass.Evaluate(query)

	if result.ScatteringFraction != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white fraction, got %v", result.ScatteringFraction)
	}
}

func TestDielectric_ReflectsAndRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	incoming := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)

	hasReflection := false
	hasRefraction := false
	for seed := int64(0); seed < 2000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		query := DielectricSampler{}.Sample(glass, incoming, normal, core.Vec3{}, sampler)
		if query.RayOutgoing.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
		if query.Normal != normal {
			t.Fatalf("Entering ray should keep the surface normal, got %v", query.Normal)
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction")
	}
	if !hasReflection {
		t.Error("Expected to see Schlick reflection in at least some samples")
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	// leaving the glass at a grazing angle
	incoming := core.NewVec3(1, 0.1, 0)
	normal := core.NewVec3(0, 1, 0)

	for seed := int64(0); seed < 20; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		query := DielectricSampler{}.Sample(glass, incoming, normal, core.Vec3{}, sampler)

		if query.RayOutgoing != incoming.Reflect(normal) {
			t.Fatalf("Expected total internal reflection, got %v", query.RayOutgoing)
		}
		if query.Normal != normal.Negate() {
			t.Fatalf("Exiting ray should flip the normal, got %v", query.Normal)
		}
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	refracted, ok := Refract(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), 1/1.5)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}
	if !refracted.ApproxEquals(core.NewVec3(0, -1, 0), 1e-12) {
		t.Errorf("Expected straight-through direction, got %v", refracted)
	}
}

func TestSchlick(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		expected float64
	}{
		{"head on", 1.0, 0.04},
		{"grazing", 0.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Schlick(tt.cosine, 1.5)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
