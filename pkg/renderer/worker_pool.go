package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"

	"github.com/sdaley/go-pathtracer/pkg/core"
)

const defaultTileSize = 64

// TileTask represents one tile rendering task for the worker pool
type TileTask struct {
	TaskID int
	Bounds image.Rectangle
	Seed   int64 // Independent random source per tile
}

// WorkerPool renders an image by partitioning the pixel grid into tiles and
// distributing them across workers. Each tile draws from its own random
// source seeded from the base seed and tile ID, and workers write into
// disjoint regions of a shared stats grid, so the output for a given seed is
// identical regardless of worker count. The scene is read-only during
// rendering, so no synchronization beyond task distribution is needed.
type WorkerPool struct {
	scene      Scene
	width      int
	height     int
	tileSize   int
	numWorkers int
	baseSeed   int64
	config     SamplingConfig
	logger     core.Logger
}

// NewWorkerPool creates a worker pool for the given scene and image size.
// numWorkers <= 0 selects one worker per CPU.
func NewWorkerPool(scene Scene, width, height, numWorkers int, baseSeed int64, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		scene:      scene,
		width:      width,
		height:     height,
		tileSize:   defaultTileSize,
		numWorkers: numWorkers,
		baseSeed:   baseSeed,
		config:     DefaultSamplingConfig(),
		logger:     logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (wp *WorkerPool) SetSamplingConfig(config SamplingConfig) {
	wp.config = config
}

// tiles partitions the pixel grid into tile tasks with deterministic seeds
func (wp *WorkerPool) tiles() []TileTask {
	var tasks []TileTask
	taskID := 0

	for y := 0; y < wp.height; y += wp.tileSize {
		for x := 0; x < wp.width; x += wp.tileSize {
			bounds := image.Rect(x, y,
				min(x+wp.tileSize, wp.width),
				min(y+wp.tileSize, wp.height))
			tasks = append(tasks, TileTask{
				TaskID: taskID,
				Bounds: bounds,
				Seed:   wp.baseSeed + int64(taskID),
			})
			taskID++
		}
	}

	return tasks
}

// Render renders the full image across the pool's workers and merges the
// results deterministically by pixel coordinate
func (wp *WorkerPool) Render() (*image.RGBA, RenderStats) {
	tasks := wp.tiles()
	pixelStats := NewPixelStatsGrid(wp.width, wp.height)

	taskQueue := make(chan TileTask, len(tasks))
	results := make(chan RenderStats, len(tasks))

	var wg sync.WaitGroup
	for workerID := 0; workerID < wp.numWorkers; workerID++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker owns a raytracer; tiles own their samplers
			rt := NewRaytracer(wp.scene, wp.width, wp.height)
			rt.SetSamplingConfig(wp.config)

			for task := range taskQueue {
				sampler := core.NewRandomSampler(rand.New(rand.NewSource(task.Seed)))
				results <- rt.RenderBounds(task.Bounds, pixelStats, sampler)
			}
		}()
	}

	for _, task := range tasks {
		taskQueue <- task
	}
	close(taskQueue)
	wg.Wait()
	close(results)

	parts := make([]RenderStats, 0, len(tasks))
	for part := range results {
		parts = append(parts, part)
	}

	if wp.logger != nil {
		wp.logger.Printf("Rendered %d tiles on %d workers", len(tasks), wp.numWorkers)
	}

	rt := NewRaytracer(wp.scene, wp.width, wp.height)
	return rt.assembleImage(pixelStats), MergeRenderStats(parts)
}
