package renderer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is returned for sampling settings that cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     `json:"samplesPerPixel"` // Number of rays per pixel
	MaxDepth        int     `json:"maxDepth"`        // Maximum ray bounce depth
	TMin            float64 `json:"tMin"`            // Ray interval start
	TMax            float64 `json:"tMax"`            // Ray interval end
	DirectLighting  bool    `json:"directLighting"`  // Sample scene point lights at every bounce
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 32,
		MaxDepth:        16,
		TMin:            core.DefaultTMin,
		TMax:            core.DefaultTMax,
		DirectLighting:  true,
	}
}

// Validate checks that the config describes a renderable setup
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if !(c.TMin > 0) || !(c.TMin < c.TMax) {
		return fmt.Errorf("%w: ray interval [%g, %g]", ErrInvalidConfig, c.TMin, c.TMax)
	}
	return nil
}

// IntegratorConfig returns the path settings for the integrator
func (c SamplingConfig) IntegratorConfig() integrator.Config {
	return integrator.Config{
		MaxDepth:       c.MaxDepth,
		TMin:           c.TMin,
		TMax:           c.TMax,
		DirectLighting: c.DirectLighting,
	}
}

// MergeSamplingConfig overlays the non-zero numeric fields of override onto base.
// DirectLighting is a plain bool and always comes from base.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.TMin != 0 {
		result.TMin = override.TMin
	}
	if override.TMax != 0 {
		result.TMax = override.TMax
	}
	return result
}

// ParallelConfig controls tile rendering
type ParallelConfig struct {
	TileSize   int   `json:"tileSize"`   // Edge length of each square tile in pixels
	NumWorkers int   `json:"numWorkers"` // Number of parallel workers (0 = use CPU count)
	Seed       int64 `json:"seed"`       // Base seed; tile i draws from Seed + i
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   32,
		NumWorkers: runtime.NumCPU(),
		Seed:       42,
	}
}

// FileConfig is the JSON render-config file. Absent fields keep their defaults.
type FileConfig struct {
	Sampling SamplingConfig        `json:"sampling"`
	Parallel ParallelConfig        `json:"parallel"`
	Camera   geometry.CameraConfig `json:"camera"`

	// DirectLighting distinguishes "false" from "absent"
	DirectLighting *bool `json:"directLighting,omitempty"`
}

// LoadConfig reads a FileConfig from a JSON file
func LoadConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var config FileConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

// ApplySampling merges the file's sampling settings over base
func (f FileConfig) ApplySampling(base SamplingConfig) SamplingConfig {
	result := MergeSamplingConfig(base, f.Sampling)
	if f.DirectLighting != nil {
		result.DirectLighting = *f.DirectLighting
	}
	return result
}

// ApplyParallel merges the file's parallel settings over base
func (f FileConfig) ApplyParallel(base ParallelConfig) ParallelConfig {
	result := base
	if f.Parallel.TileSize != 0 {
		result.TileSize = f.Parallel.TileSize
	}
	if f.Parallel.NumWorkers != 0 {
		result.NumWorkers = f.Parallel.NumWorkers
	}
	if f.Parallel.Seed != 0 {
		result.Seed = f.Parallel.Seed
	}
	return result
}
