package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-pathtrace-kernel/pkg/kernel"
)

// TileTask represents one tile dispatch for the worker pool. The camera
// pointer carries the per-pass parameter block (seed and samples differ
// between passes).
type TileTask struct {
	Tile   Tile
	Camera *kernel.Camera
	TaskID int
}

// TileResult signals completion of a tile task
type TileResult struct {
	TaskID int
}

// WorkerPool renders tiles in parallel. All workers share the scene arrays
// read-only and the accumulation buffer; tile bounds never overlap, so each
// pixel is written by exactly one worker per pass.
type WorkerPool struct {
	spheres     []kernel.Sphere
	materials   []kernel.Material
	accum       *kernel.Accumulator
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool over the shared scene and buffer.
// numWorkers <= 0 selects the CPU count.
func NewWorkerPool(spheres []kernel.Sphere, materials []kernel.Material, accum *kernel.Accumulator, maxTiles, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		spheres:     spheres,
		materials:   materials,
		accum:       accum,
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop: invoke the kernel once per pixel of each
// tile. Bounds are already clipped, but the kernel's own grid check keeps
// out-of-image cells harmless regardless.
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		for y := task.Tile.Bounds.Min.Y; y < task.Tile.Bounds.Max.Y; y++ {
			for x := task.Tile.Bounds.Min.X; x < task.Tile.Bounds.Max.X; x++ {
				kernel.TracePixel(task.Camera, wp.spheres, wp.materials, wp.accum, x, y)
			}
		}
		wp.resultQueue <- TileResult{TaskID: task.TaskID}
	}
}
