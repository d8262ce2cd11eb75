package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
	"github.com/df07/go-pathtrace-kernel/pkg/kernel"
	"github.com/df07/go-pathtrace-kernel/pkg/scene"
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

// Per-pass seeds diverge from the base seed by a golden-ratio stride, so
// every pass draws a decorrelated set of pixel streams.
const passSeedStride = 0x9E3779B9

// Config contains configuration for progressive rendering
type Config struct {
	TileSize       int // size of each dispatch tile (8 recommended)
	SamplesPerPass int // samples per pixel per pass
	NumWorkers     int // number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:       DefaultTileSize,
		SamplesPerPass: 64,
		NumWorkers:     0,
	}
}

// Renderer drives progressive rendering: it splits the requested sample
// budget into passes, dispatches each pass over the tile grid through a
// worker pool, and accumulates every pass into one persistent buffer.
// Passes are strictly sequenced; the buffer is never shared between two
// in-flight dispatches.
type Renderer struct {
	camera     kernel.Camera // base parameter block; per-pass copies remix seed/samples
	spheres    []kernel.Sphere
	materials  []kernel.Material
	accum      *kernel.Accumulator
	tiles      []Tile
	config     Config
	logger     core.Logger
	passesDone int
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(sc *scene.Scene, config Config, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if config.SamplesPerPass <= 0 {
		config.SamplesPerPass = DefaultConfig().SamplesPerPass
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	cam := sc.Camera
	return &Renderer{
		camera:    cam,
		spheres:   sc.Spheres,
		materials: sc.Materials,
		accum:     kernel.NewAccumulator(cam.Width, cam.Height),
		tiles:     NewTileGrid(cam.Width, cam.Height, config.TileSize),
		config:    config,
		logger:    logger,
	}
}

// Accumulator exposes the persistent accumulation buffer
func (r *Renderer) Accumulator() *kernel.Accumulator {
	return r.accum
}

// Render accumulates totalSamples additional samples per pixel, chunked into
// passes of at most SamplesPerPass. It can be called repeatedly to refine
// the same buffer; cancellation is honored between passes.
func (r *Renderer) Render(ctx context.Context, totalSamples int) (*image.RGBA, RenderStats, error) {
	if totalSamples < 1 {
		totalSamples = 1
	}

	samplesPerPass := min(r.config.SamplesPerPass, totalSamples)
	passCount := (totalSamples + samplesPerPass - 1) / samplesPerPass

	pool := NewWorkerPool(r.spheres, r.materials, r.accum, len(r.tiles), r.config.NumWorkers)
	pool.Start()
	defer pool.Stop()

	r.logger.Printf("Rendering %d samples/pixel in %d passes (%d workers)...\n",
		totalSamples, passCount, pool.GetNumWorkers())

	remaining := totalSamples
	for pass := 0; pass < passCount; pass++ {
		select {
		case <-ctx.Done():
			return nil, RenderStats{}, ctx.Err()
		default:
		}

		startTime := time.Now()
		passSamples := min(samplesPerPass, remaining)
		remaining -= passSamples

		if err := r.renderPass(pool, passSamples); err != nil {
			return nil, RenderStats{}, err
		}

		r.logger.Printf("Pass %d/%d completed in %v (%d samples/pixel)\n",
			pass+1, passCount, time.Since(startTime), passSamples)
	}

	return ToImage(r.accum), r.Stats(), nil
}

// renderPass dispatches one pass over every tile and waits for completion.
// Each pass uses a freshly remixed dispatch seed.
func (r *Renderer) renderPass(pool *WorkerPool, passSamples int) error {
	cam := r.camera
	cam.Seed = r.camera.Seed ^ (uint32(r.passesDone) * passSeedStride)
	cam.SamplesPerPass = passSamples

	for i, tile := range r.tiles {
		pool.SubmitTask(TileTask{Tile: tile, Camera: &cam, TaskID: i})
	}

	for range r.tiles {
		if _, ok := pool.GetResult(); !ok {
			return fmt.Errorf("worker pool closed unexpectedly")
		}
	}

	r.passesDone++
	return nil
}
