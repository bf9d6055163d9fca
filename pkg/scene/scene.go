package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/go-gl/mathgl/mgl64"
)

// shadowTMin offsets shadow rays off the surface they start on
const shadowTMin = 1e-4

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera  *geometry.Camera
	Width   int
	Height  int
	Objects []*SceneObject            // Objects in the scene, order only breaks ties
	Lights  []*lights.ScenePointLight // Point lights for direct lighting

	bvh *core.BVH[*SceneObject] // optional, built by Accelerate
}

// ObjectHit is the nearest intersection found by RayCast and the object it belongs to
type ObjectHit struct {
	Result geometry.IntersectionResult
	Object *SceneObject
}

// New creates an empty scene
func New(width, height int, camera *geometry.Camera) *Scene {
	return &Scene{
		Camera:  camera,
		Width:   width,
		Height:  height,
		Objects: make([]*SceneObject, 0),
		Lights:  make([]*lights.ScenePointLight, 0),
	}
}

// PushObject places a model-space object with the given model matrix
func (s *Scene) PushObject(object ModelSpaceObject, modelMatrix mgl64.Mat4) error {
	sceneObject, err := NewSceneObject(object, modelMatrix)
	if err != nil {
		return fmt.Errorf("push object %d: %w", len(s.Objects), err)
	}
	s.Objects = append(s.Objects, sceneObject)
	s.bvh = nil
	return nil
}

// PushLight places a point light with the given model matrix
func (s *Scene) PushLight(light lights.PointLight, modelMatrix mgl64.Mat4) error {
	sceneLight, err := lights.NewScenePointLight(light, modelMatrix)
	if err != nil {
		return fmt.Errorf("push light %d: %w", len(s.Lights), err)
	}
	s.Lights = append(s.Lights, sceneLight)
	return nil
}

// LenObjects returns the number of objects in the scene
func (s *Scene) LenObjects() int {
	return len(s.Objects)
}

// IsEmptyObjects reports whether the scene has no objects
func (s *Scene) IsEmptyObjects() bool {
	return len(s.Objects) == 0
}

// IsEmptyLights reports whether the scene has no point lights
func (s *Scene) IsEmptyLights() bool {
	return len(s.Lights) == 0
}

// Accelerate builds a BVH over the world-space object bounds. RayCast uses it
// until the next PushObject.
func (s *Scene) Accelerate() {
	s.bvh = core.NewBVH(s.Objects)
}

// IsAccelerated reports whether RayCast will use a BVH
func (s *Scene) IsAccelerated() bool {
	return s.bvh != nil
}

// RayCast finds the nearest object hit by the query. Each test uses the
// nearest t found so far as its upper bound. Tangent hits count as hits.
func (s *Scene) RayCast(query geometry.IntersectionQuery) (ObjectHit, bool) {
	var closest ObjectHit
	found := false

	visit := func(object *SceneObject, tMax float64) float64 {
		result := object.Intersect(geometry.IntersectionQuery{Ray: query.Ray, TMin: query.TMin, TMax: tMax})
		if result.IsHitOrTangent() && result.Data.T < tMax {
			closest = ObjectHit{Result: result, Object: object}
			found = true
			return result.Data.T
		}
		return tMax
	}

	if s.bvh != nil {
		s.bvh.Traverse(query.Ray, query.TMin, query.TMax, visit)
		return closest, found
	}

	tMax := query.TMax
	for _, object := range s.Objects {
		tMax = visit(object, tMax)
	}
	return closest, found
}

// LineOfSight reports whether nothing lies between from and to
func (s *Scene) LineOfSight(from, to core.Vec3) bool {
	toTarget := to.Subtract(from)
	distance := toTarget.Length()
	if distance <= shadowTMin {
		return true
	}

	ray := core.NewRay(from, toTarget.Divide(distance))
	_, blocked := s.RayCast(geometry.IntersectionQuery{Ray: ray, TMin: shadowTMin, TMax: distance})
	return !blocked
}

// DirectLighting sums the inverse-square contribution of every point light visible from point
func (s *Scene) DirectLighting(point core.Vec3) core.Vec3 {
	total := core.Vec3{}
	for _, light := range s.Lights {
		sample := light.Sample(point)
		if !s.LineOfSight(point, sample.Point) {
			continue
		}
		total = total.Add(lights.DirectIrradiance(sample.Emission, sample.Distance))
	}
	return total
}
