package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Raytracer renders a scene one pixel at a time. It only reads the scene and
// integrator, so one Raytracer can be shared by many workers as long as each
// passes its own sampler.
type Raytracer struct {
	scene      *scene.Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the path tracing integrator
func NewRaytracer(s *scene.Scene, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	return NewRaytracerWithIntegrator(s, config, integrator.NewPathTracingIntegrator(config.IntegratorConfig()), logger)
}

// NewRaytracerWithIntegrator creates a raytracer with a custom integrator
func NewRaytracerWithIntegrator(s *scene.Scene, config SamplingConfig, integratorInst integrator.Integrator, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s == nil || s.Camera == nil {
		return nil, fmt.Errorf("%w: scene has no camera", ErrInvalidConfig)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, s.Width, s.Height)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      s,
		width:      s.Width,
		height:     s.Height,
		config:     config,
		integrator: integratorInst,
		logger:     logger,
	}, nil
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render renders the whole image sequentially: rows top to bottom, columns
// left to right, all samples drawn from sampler in that order.
func (rt *Raytracer) Render(sampler core.Sampler) (*Canvas, RenderStats) {
	start := time.Now()
	canvas := NewCanvas(rt.width, rt.height)

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, depth %d...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	stats := rt.RenderBounds(image.Rect(0, 0, rt.width, rt.height), canvas, sampler)
	stats.Duration = time.Since(start)

	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return canvas, stats
}

// RenderBounds renders the pixels inside bounds into canvas. Pixels outside
// bounds are not touched, so disjoint bounds can be rendered concurrently.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, canvas *Canvas, sampler core.Sampler) RenderStats {
	stats := RenderStats{}
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			rt.samplePixel(i, j, &ps, sampler)
			canvas.Set(i, j, ToneMap(ps.GetColor()))

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}
	stats.finalize()
	return stats
}

// samplePixel takes SamplesPerPixel jittered samples for the pixel in column
// i, row j (row 0 at the top)
func (rt *Raytracer) samplePixel(i, j int, ps *PixelStats, sampler core.Sampler) {
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + sampler.Float64()) / float64(rt.width)
		v := (float64(rt.height-j-1) + sampler.Float64()) / float64(rt.height)
		ray := rt.scene.Camera.GetRay(u, v, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler))
	}
}
