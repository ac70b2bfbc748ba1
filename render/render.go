// Package render implements the tile-parallel renderer: it partitions
// the image into independent tiles, runs a data-parallel map over tiles
// calling the shading kernel per sample, and composites results into
// the final framebuffer. The worker/channel structure generalizes a
// row-per-goroutine ray tracer from image rows to 2D tiles and from a
// fixed goroutine-per-row fan-out to a worker pool draining a tile
// channel.
package render

import (
	"log/slog"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/loamlabs/pathtrace/camera"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/hrpp"
	"github.com/loamlabs/pathtrace/shade"
	"github.com/loamlabs/pathtrace/vec3"
)

// Render produces a W x H framebuffer of world as seen by cam. Tile
// results are independent: the only shared mutable state workers touch
// is whatever World.Hit does internally (e.g. an HRPP predictor,
// guarded by its own mutex); the framebuffer itself is written only by
// this single serial merge loop, never by a worker goroutine directly.
func Render(w, h int, cam *camera.Camera, world shade.World, background vec3.Vec3, cfg Config) *Framebuffer {
	start := time.Now()

	var predictorReg *hrpp.Registry
	if cfg.UsePredictor {
		if attacher, ok := world.(hittable.PredictorAttacher); ok {
			predictorReg = hrpp.NewRegistry(cfg.GoUpLevel)
			attacher.AttachPredictor(predictorReg)
		} else {
			slog.Warn("predictor requested but world exposes no attachable BVH")
		}
	}

	tiles := Tiles(w, h, cfg.TileWidth, cfg.TileHeight)
	framebuffer := NewFramebuffer(w, h)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type tileResult struct {
		tile Tile
		fb   *Framebuffer
	}

	tilesCh := make(chan Tile, len(tiles))
	for _, t := range tiles {
		tilesCh <- t
	}
	close(tilesCh)

	resultsCh := make(chan tileResult, len(tiles))
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for t := range tilesCh {
				resultsCh <- tileResult{tile: t, fb: renderTile(t, w, h, cam, world, background, cfg, rng)}
			}
		}(int64(i) + 1)
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	merged := 0
	for res := range resultsCh {
		framebuffer.MergeTile(res.fb, res.tile.XStart, res.tile.YStart)
		merged++
	}

	if predictorReg != nil {
		counters := predictorReg.AggregateCounters()
		slog.Info("predictor stats",
			"true_positive", counters.TruePositive,
			"false_positive", counters.FalsePositive,
			"no_prediction", counters.NoPrediction)
	}

	slog.Info("render complete",
		"tiles", merged,
		"width", w,
		"height", h,
		"samples", cfg.SamplesPerPixel,
		"workers", workers,
		"elapsed", time.Since(start))

	return framebuffer
}

// renderTile samples every pixel of tile t, returning a tile-local
// framebuffer. It runs on exactly one worker goroutine and never
// touches the shared framebuffer.
func renderTile(t Tile, imgWidth, imgHeight int, cam *camera.Camera, world shade.World, background vec3.Vec3, cfg Config, rng *rand.Rand) *Framebuffer {
	fb := NewFramebuffer(t.Width, t.Height)

	for ty := 0; ty < t.Height; ty++ {
		y := t.YStart + ty
		for tx := 0; tx < t.Width; tx++ {
			x := t.XStart + tx

			var accum vec3.Vec3
			for s := 0; s < cfg.SamplesPerPixel; s++ {
				u := (float64(x) + rng.Float64()) / float64(imgWidth-1)
				v := (float64(y) + rng.Float64()) / float64(imgHeight-1)
				r := cam.GetRay(u, v, rng)
				accum = accum.Add(shade.Color(r, world, cfg.MaxDepth, background, rng))
			}

			fb.Set(tx, ty, accum.Scale(1/float64(cfg.SamplesPerPixel)))
		}
	}

	return fb
}
