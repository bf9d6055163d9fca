package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ParallelRenderer splits the image into tiles and renders them on a worker pool.
// Each tile has its own seeded sampler, so the output is identical for any
// number of workers.
type ParallelRenderer struct {
	raytracer *Raytracer
	config    ParallelConfig
	logger    core.Logger
}

// NewParallelRenderer creates a parallel renderer around raytracer
func NewParallelRenderer(raytracer *Raytracer, config ParallelConfig, logger core.Logger) *ParallelRenderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &ParallelRenderer{raytracer: raytracer, config: config, logger: logger}
}

// Render renders every tile and returns the finished canvas. Cancelling ctx
// stops work between tiles; the partial canvas is discarded and ctx.Err() returned.
func (pr *ParallelRenderer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	start := time.Now()
	width, height := pr.raytracer.width, pr.raytracer.height

	canvas := NewCanvas(width, height)
	tiles := NewTileGrid(width, height, pr.config.TileSize, pr.config.Seed)

	pool := NewWorkerPool(pr.raytracer, pr.config.NumWorkers, len(tiles))
	pool.Start(ctx)
	defer pool.Stop()

	pr.logger.Printf("Rendering %dx%d at %d samples/pixel: %d tiles on %d workers...\n",
		width, height, pr.raytracer.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Canvas: canvas})
	}

	var stats RenderStats
	var firstErr error
	progressStep := max(1, len(tiles)/10)
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)

		if (i+1)%progressStep == 0 {
			pr.logger.Printf("  %d/%d tiles\n", i+1, len(tiles))
		}
	}

	if firstErr != nil {
		pr.logger.Printf("Rendering cancelled after %d/%d tiles\n", stats.TilesRendered, len(tiles))
		return nil, RenderStats{}, fmt.Errorf("render: %w", firstErr)
	}

	stats.Duration = time.Since(start)
	pr.logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Duration, stats.AverageSamples)
	return canvas, stats, nil
}
