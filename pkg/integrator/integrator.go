package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. All randomness is
	// drawn from sampler, so the scene is only read.
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}

// Config controls path construction
type Config struct {
	MaxDepth       int     // Paths that hit a surface at this depth contribute nothing more
	TMin           float64 // Ray interval start
	TMax           float64 // Ray interval end
	DirectLighting bool    // Add inverse-square point light contributions at each bounce
}

// DefaultConfig returns the reference path settings
func DefaultConfig() Config {
	return Config{
		MaxDepth:       16,
		TMin:           core.DefaultTMin,
		TMax:           core.DefaultTMax,
		DirectLighting: true,
	}
}
