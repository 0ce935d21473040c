package brushmask

import (
	"context"
	"image"
	"log/slog"

	"github.com/gogpu/brushmask/internal/parallel"
)

// bandsPerWorker controls how finely the region is split for load balancing.
const bandsPerWorker = 4

// ProcessParallel rasterizes g into rect of data.Device using workers
// goroutines (GOMAXPROCS when workers <= 0).
//
// The region is split into horizontal bands, each processed by its own
// applicator whose seed is derived from the base seed (WithSeed or a
// random one) and the band index. g must not be modified until
// ProcessParallel returns. Bands that have not started when ctx is
// cancelled are skipped and ctx.Err() is returned.
func ProcessParallel(ctx context.Context, g Generator, data *MaskProcessingData, rect image.Rectangle, workers int, opts ...ApplicatorOption) error {
	rect = rect.Intersect(data.Device.Bounds())
	if rect.Empty() {
		return ctx.Err()
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	o := resolveApplicatorOptions(opts)
	bands := splitBands(rect, pool.Workers()*bandsPerWorker)
	Logger().Debug("brushmask: parallel process",
		"bands", len(bands), "workers", pool.Workers(), "impl", o.impl)

	jobs := make([]func(), len(bands))
	for i, band := range bands {
		bo := o
		bo.seed = o.seed + uint64(i)*0x9e3779b97f4a7c15 // #nosec G115 -- i >= 0
		app := newApplicator(g, bo)
		app.InitializeData(data)
		jobs[i] = func() { app.Process(band) }
	}
	err := pool.Run(ctx, jobs)

	if log := Logger(); log.Enabled(ctx, slog.LevelDebug) {
		ts := softTransfers.Stats()
		log.Debug("brushmask: parallel process done",
			"err", err,
			slog.Group("transfers",
				"len", ts.Len, "hits", ts.Hits, "misses", ts.Misses,
				"evictions", ts.Evictions))
	}
	return err
}

// splitBands cuts rect into at most n horizontal bands of near-equal height.
func splitBands(rect image.Rectangle, n int) []image.Rectangle {
	h := rect.Dy()
	n = min(max(n, 1), h)
	bands := make([]image.Rectangle, 0, n)
	for i := range n {
		y0 := rect.Min.Y + h*i/n
		y1 := rect.Min.Y + h*(i+1)/n
		bands = append(bands, image.Rect(rect.Min.X, y0, rect.Max.X, y1))
	}
	return bands
}
