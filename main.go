package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	width      int
	height     int
	spp        int
	depth      int
	workers    int
	seed       int64
	out        string
	format     string
	configPath string
	serial     bool
	bvh        bool
	noDirect   bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.StringVar(&opts.sceneName, "scene", "spheres", "Scene name: "+sceneNames())
	fs.IntVar(&opts.width, "width", 480, "Image width in pixels")
	fs.IntVar(&opts.height, "height", 270, "Image height in pixels")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = config/default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum path depth (0 = config/default)")
	fs.IntVar(&opts.workers, "workers", 0, "Parallel workers (0 = config/CPU count)")
	fs.Int64Var(&opts.seed, "seed", 42, "Seed for scene layout and sampling")
	fs.StringVar(&opts.out, "out", "output.ppm", "Output file")
	fs.StringVar(&opts.format, "format", "", "Output format: ppm or png (default: from -out extension)")
	fs.StringVar(&opts.configPath, "config", "", "Optional JSON render config")
	fs.BoolVar(&opts.serial, "serial", false, "Render on one goroutine with a single sampler")
	fs.BoolVar(&opts.bvh, "bvh", false, "Build a BVH over scene objects")
	fs.BoolVar(&opts.noDirect, "no-direct", false, "Disable direct lighting from point lights")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.format == "" {
		opts.format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.out)), ".")
	}
	if opts.format != "ppm" && opts.format != "png" {
		return options{}, fmt.Errorf("unsupported output format %q (want ppm or png)", opts.format)
	}
	return opts, nil
}

func sceneNames() string {
	var names []string
	for _, info := range scene.ListScenes() {
		names = append(names, info.ID)
	}
	return strings.Join(names, ", ")
}

// createScene builds the named scene, applying a camera override if given
func createScene(name string, width, height int, seed int64, camera geometry.CameraConfig) (*scene.Scene, error) {
	return scene.Create(name, width, height, seed, camera)
}

// renderSettings resolves defaults, config file, and flags, in that order
func renderSettings(opts options) (renderer.SamplingConfig, renderer.ParallelConfig, geometry.CameraConfig, error) {
	sampling := renderer.DefaultSamplingConfig()
	parallel := renderer.DefaultParallelConfig()
	parallel.Seed = opts.seed
	var camera geometry.CameraConfig

	if opts.configPath != "" {
		fileConfig, err := renderer.LoadConfig(opts.configPath)
		if err != nil {
			return sampling, parallel, camera, err
		}
		sampling = fileConfig.ApplySampling(sampling)
		parallel = fileConfig.ApplyParallel(parallel)
		camera = fileConfig.Camera
	}

	sampling = renderer.MergeSamplingConfig(sampling, renderer.SamplingConfig{
		SamplesPerPixel: opts.spp,
		MaxDepth:        opts.depth,
	})
	if opts.noDirect {
		sampling.DirectLighting = false
	}
	if opts.workers > 0 {
		parallel.NumWorkers = opts.workers
	}
	return sampling, parallel, camera, sampling.Validate()
}

func run(ctx context.Context, opts options, logger core.Logger) error {
	sampling, parallel, cameraOverride, err := renderSettings(opts)
	if err != nil {
		return err
	}

	// Open the output first so a bad path fails before any rendering
	file, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("cannot write output %s: %w", opts.out, err)
	}
	defer file.Close()

	logger.Printf("Generating scene %q...\n", opts.sceneName)
	s, err := createScene(opts.sceneName, opts.width, opts.height, opts.seed, cameraOverride)
	if err != nil {
		return err
	}
	if opts.bvh {
		s.Accelerate()
	}
	logger.Printf("Scene has %d objects and %d point lights\n", s.LenObjects(), len(s.Lights))

	rt, err := renderer.NewRaytracer(s, sampling, logger)
	if err != nil {
		return err
	}

	var canvas *renderer.Canvas
	var stats renderer.RenderStats
	if opts.serial {
		canvas, stats = rt.Render(core.NewSeededSampler(opts.seed))
	} else {
		canvas, stats, err = renderer.NewParallelRenderer(rt, parallel, logger).Render(ctx)
		if err != nil {
			return err
		}
	}
	logger.Printf("Samples: %d total, %.1f per pixel\n", stats.TotalSamples, stats.AverageSamples)

	if err := writeCanvas(file, canvas, opts.format); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	logger.Printf("Render saved as %s\n", opts.out)
	return nil
}

func writeCanvas(w io.Writer, canvas *renderer.Canvas, format string) error {
	if format == "png" {
		return canvas.WritePNG(w)
	}
	return canvas.WritePPM(w)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
