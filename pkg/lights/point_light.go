package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// ScenePointLight is a point light placed in world space. Its position is the
// model-space origin carried through the model matrix.
type ScenePointLight struct {
	light     PointLight
	transform core.Transform
}

// NewScenePointLight places a point light with the given model matrix
func NewScenePointLight(light PointLight, modelMatrix mgl64.Mat4) (*ScenePointLight, error) {
	transform, err := core.NewTransform(modelMatrix)
	if err != nil {
		return nil, fmt.Errorf("point light: %w", err)
	}
	return &ScenePointLight{light: light, transform: transform}, nil
}

// Position returns the world-space position
func (l *ScenePointLight) Position() core.Vec3 {
	return l.transform.TransformPoint(core.Vec3{})
}

// Emission returns the light's emitted power
func (l *ScenePointLight) Emission() core.Vec3 {
	return l.light.Emission
}

// Sample returns the light as seen from point
func (l *ScenePointLight) Sample(point core.Vec3) LightSample {
	position := l.Position()
	toLight := position.Subtract(point)
	distance := toLight.Length()

	direction := core.Vec3{}
	if distance > 0 {
		direction = toLight.Divide(distance)
	}

	return LightSample{
		Point:     position,
		Direction: direction,
		Distance:  distance,
		Emission:  l.light.Emission,
	}
}

// DirectIrradiance is the inverse-square falloff of a point light: emission / (4π d²)
func DirectIrradiance(emission core.Vec3, distance float64) core.Vec3 {
	if distance <= 0 {
		return core.Vec3{}
	}
	return emission.Multiply(1.0 / (4 * math.Pi * distance * distance))
}
