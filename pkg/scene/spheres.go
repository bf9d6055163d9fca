package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
)

// sceneBuilder collects the first error from a run of Push calls
type sceneBuilder struct {
	scene *Scene
	err   error
}

func (b *sceneBuilder) sphere(object func(geometry.Sphere) ModelSpaceObject, center core.Vec3, radius float64) {
	if b.err != nil {
		return
	}
	sphere, err := geometry.NewSphere(core.Vec3{}, radius)
	if err != nil {
		b.err = err
		return
	}
	b.err = b.scene.PushObject(object(sphere), core.Translation(center))
}

func (b *sceneBuilder) light(emission, position core.Vec3) {
	if b.err != nil {
		return
	}
	b.err = b.scene.PushLight(lights.NewPointLight(emission), core.Translation(position))
}

func (b *sceneBuilder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}

func lambertian(albedo core.Vec3) func(geometry.Sphere) ModelSpaceObject {
	return func(s geometry.Sphere) ModelSpaceObject { return NewLambertianSphere(s, albedo) }
}

func metal(albedo core.Vec3, fuzz float64) func(geometry.Sphere) ModelSpaceObject {
	return func(s geometry.Sphere) ModelSpaceObject { return NewMetalSphere(s, albedo, fuzz) }
}

func glass(refractiveIndex float64) func(geometry.Sphere) ModelSpaceObject {
	return func(s geometry.Sphere) ModelSpaceObject { return NewDielectricSphere(s, refractiveIndex) }
}

func emissive(albedo, emission core.Vec3) func(geometry.Sphere) ModelSpaceObject {
	return func(s geometry.Sphere) ModelSpaceObject { return NewEmissiveSphere(s, albedo, emission) }
}

func blackBody(emission core.Vec3) func(geometry.Sphere) ModelSpaceObject {
	return func(s geometry.Sphere) ModelSpaceObject { return NewBlackBodySphere(s, emission) }
}

// RandomSpheresCameraConfig is the camera used by NewRandomSpheresScene
func RandomSpheresCameraConfig(width, height int) geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:    core.NewVec3(12, 2, 4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: float64(width) / float64(height),
		Aperture:    0.1,
	}
}

// NewRandomSpheresScene creates the field of small random spheres around three
// large feature spheres, lit by the sky and three point lights. The layout is
// fully determined by seed.
func NewRandomSpheresScene(width, height int, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := RandomSpheresCameraConfig(width, height)
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	b := &sceneBuilder{scene: New(width, height, geometry.NewCamera(cameraConfig))}
	random := rand.New(rand.NewSource(seed))

	b.light(core.NewVec3(10, 10, 10), core.NewVec3(4, 2, 4))
	b.light(core.NewVec3(0, 5, 20), core.NewVec3(9, 2, 4))
	b.light(core.NewVec3(20, 0, 6), core.NewVec3(0, 3, -3))

	// Ground
	b.sphere(lambertian(core.NewVec3(0.5, 0.5, 0.5)), core.NewVec3(0, -1000, 0), 1000)

	featureCenter := core.NewVec3(4, 2, 0)
	for a := -10; a < 10; a++ {
		for c := -10; c < 10; c++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())
			if center.Subtract(featureCenter).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				b.sphere(lambertian(albedo), center, 0.2)
			case chooseMaterial < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				b.sphere(metal(albedo, 0.5*random.Float64()), center, 0.2)
			case chooseMaterial < 0.98:
				b.sphere(glass(1.5), center, 0.2)
			default:
				b.sphere(emissive(core.NewVec3(0.1, 0.5, 0.4), core.NewVec3(1, 1, 1)), center, 0.3)
			}
		}
	}

	b.sphere(glass(1.5), core.NewVec3(0, 1, 0), 1)
	b.sphere(lambertian(core.NewVec3(0.4, 0.2, 0.1)), core.NewVec3(-4, 1, 0), 1)
	b.sphere(metal(core.NewVec3(0.7, 0.6, 0.5), 0.1), core.NewVec3(4, 1, 0), 1)

	return b.build()
}

// NewSimpleScene creates a ground, three spheres and one point light
func NewSimpleScene(width, height int, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 1, 5),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: float64(width) / float64(height),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	b := &sceneBuilder{scene: New(width, height, geometry.NewCamera(cameraConfig))}

	b.light(core.NewVec3(20, 20, 20), core.NewVec3(0, 4, 1))

	b.sphere(lambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)), core.NewVec3(0, -100.5, -1), 100)
	b.sphere(lambertian(core.NewVec3(0.1, 0.2, 0.5)), core.NewVec3(0, 0.5, -1), 0.5)
	b.sphere(glass(1.5), core.NewVec3(-1.1, 0.5, -1), 0.5)
	b.sphere(metal(core.NewVec3(0.8, 0.6, 0.2), 0.3), core.NewVec3(1.1, 0.5, -1), 0.5)
	// Small glowing light trap behind the spheres
	b.sphere(blackBody(core.NewVec3(4, 3.5, 3)), core.NewVec3(0, 2.5, -3), 0.4)

	return b.build()
}
