package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned by Create for a name with no registered builder
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type sceneBuilderFunc func(width, height int, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error)

type registeredScene struct {
	info  SceneInfo
	build sceneBuilderFunc
}

var registry = map[string]registeredScene{
	"spheres": {
		info:  SceneInfo{ID: "spheres", DisplayName: "Random Spheres", Description: "Random field of small spheres with three feature spheres"},
		build: NewRandomSpheresScene,
	},
	"simple": {
		info:  SceneInfo{ID: "simple", DisplayName: "Simple", Description: "Three spheres on a ground sphere with one point light"},
		build: func(width, height int, _ int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
			return NewSimpleScene(width, height, cameraOverrides...)
		},
	},
	"spheregrid": {
		info:  SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "Grid of colored metal spheres"},
		build: func(width, height int, _ int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
			return NewSphereGridScene(width, height, cameraOverrides...)
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, s := range registry {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene. Non-zero fields of a camera override replace
// the scene's default camera settings.
func Create(name string, width, height int, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene %q: invalid size %dx%d", name, width, height)
	}
	return entry.build(width, height, seed, cameraOverrides...)
}
