package voronoi

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/theme"
)

// RowSink receives completed scan lines in top-to-bottom order.
// The pixel slice is only valid for the duration of the call.
type RowSink interface {
	WriteRow(y int, pix []colour.RGB) error
}

// OwnerSink is an optional RowSink extension that also receives the index of
// the seed owning each pixel of the row.
type OwnerSink interface {
	WriteOwners(y int, owners []int) error
}

// ProgressFunc is called after each row with the number of pixels done so far.
type ProgressFunc func(done, total int)

// Engine renders a Voronoi diagram.
type Engine struct {
	Width  int
	Height int
	Seeds  SeedSet
	Theme  theme.Theme
	Metric Metric

	// Workers is the number of rows computed concurrently. Values below 2
	// render on the calling goroutine.
	Workers int
}

// Validate checks the engine's inputs before any pixel work is done.
func (e *Engine) Validate() error {
	if err := ValidateDimensions(e.Width, e.Height, len(e.Seeds)); err != nil {
		return err
	}
	if e.Theme.Len() == 0 {
		return fmt.Errorf("%w: theme %q has no colours", theme.ErrMalformed, e.Theme.Name)
	}
	if _, ok := metricNames[e.Metric]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMetric, e.Metric)
	}
	return nil
}

// Nearest returns the index of the seed closest to (x, y).
func (e *Engine) Nearest(x, y int) int {
	return e.nearestFunc()(x, y)
}

// nearestFunc picks the scan loop for the engine's metric once, so the
// per-seed inner loop carries no dispatch.
func (e *Engine) nearestFunc() func(x, y int) int {
	seeds := e.Seeds
	// Larger than any in-bounds distance.
	limit := float64(e.Width) * float64(e.Height)

	switch e.Metric {
	case Manhattan:
		return func(x, y int) int {
			best, bestSeed := limit, 0
			for i, p := range seeds {
				d := float64(absInt(x-int(p.X)) + absInt(y-int(p.Y)))
				if d < best {
					best, bestSeed = d, i
				}
			}
			return bestSeed
		}
	case Chebyshev:
		return func(x, y int) int {
			best, bestSeed := limit, 0
			for i, p := range seeds {
				d := float64(max(absInt(x-int(p.X)), absInt(y-int(p.Y))))
				if d < best {
					best, bestSeed = d, i
				}
			}
			return bestSeed
		}
	default:
		return func(x, y int) int {
			best, bestSeed := limit, 0
			for i, p := range seeds {
				dx := x - int(p.X)
				dy := y - int(p.Y)
				d := math.Sqrt(float64(dx*dx + dy*dy))
				if d < best {
					best, bestSeed = d, i
				}
			}
			return bestSeed
		}
	}
}

type renderedRow struct {
	y      int
	pix    []colour.RGB
	owners []int
}

func (e *Engine) scanRow(y int, nearest func(x, y int) int, palette []colour.RGB, r *renderedRow) {
	r.y = y
	for x := 0; x < e.Width; x++ {
		owner := nearest(x, y)
		r.owners[x] = owner
		r.pix[x] = palette[owner%len(palette)]
	}
}

func (e *Engine) newRow() *renderedRow {
	return &renderedRow{
		pix:    make([]colour.RGB, e.Width),
		owners: make([]int, e.Width),
	}
}

// Render scans every pixel and writes rows to sink in order. progress may be
// nil. The context is checked between rows.
func (e *Engine) Render(ctx context.Context, sink RowSink, progress ProgressFunc) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if progress == nil {
		progress = func(int, int) {}
	}

	palette := colour.DecomposeAll(e.Theme.Colors)
	nearest := e.nearestFunc()

	if e.Workers < 2 || e.Height < 2 {
		return e.renderSerial(ctx, sink, progress, nearest, palette)
	}
	return e.renderParallel(ctx, sink, progress, nearest, palette)
}

func (e *Engine) emit(sink RowSink, r *renderedRow) error {
	if ow, ok := sink.(OwnerSink); ok {
		if err := ow.WriteOwners(r.y, r.owners); err != nil {
			return fmt.Errorf("write owners for row %d: %w", r.y, err)
		}
	}
	if err := sink.WriteRow(r.y, r.pix); err != nil {
		return fmt.Errorf("write row %d: %w", r.y, err)
	}
	return nil
}

func (e *Engine) renderSerial(ctx context.Context, sink RowSink, progress ProgressFunc, nearest func(x, y int) int, palette []colour.RGB) error {
	total := e.Width * e.Height
	row := e.newRow()
	for y := 0; y < e.Height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.scanRow(y, nearest, palette, row)
		if err := e.emit(sink, row); err != nil {
			return err
		}
		progress((y+1)*e.Width, total)
	}
	return nil
}

// renderParallel fans rows out to workers and writes them back in order from
// the calling goroutine. At most window rows are in flight at once, which
// bounds the memory held by rows that finished ahead of a slower one.
func (e *Engine) renderParallel(ctx context.Context, sink RowSink, progress ProgressFunc, nearest func(x, y int) int, palette []colour.RGB) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := min(e.Workers, e.Height)
	window := workers * 4
	total := e.Width * e.Height

	tokens := make(chan struct{}, window)
	jobs := make(chan int)
	results := make(chan *renderedRow, workers)
	pool := sync.Pool{New: func() any { return e.newRow() }}

	go func() {
		defer close(jobs)
		for y := 0; y < e.Height; y++ {
			select {
			case tokens <- struct{}{}:
			case <-ctx.Done():
				return
			}
			select {
			case jobs <- y:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range jobs {
				row := pool.Get().(*renderedRow)
				e.scanRow(y, nearest, palette, row)
				select {
				case results <- row:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	pending := make(map[int]*renderedRow, window)
	next := 0
	for row := range results {
		if err := ctx.Err(); err != nil {
			return err
		}
		pending[row.y] = row
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			if err := e.emit(sink, r); err != nil {
				return err
			}
			pool.Put(r)
			<-tokens
			next++
			progress(next*e.Width, total)
		}
	}

	if next < e.Height {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fmt.Errorf("render stopped at row %d of %d", next, e.Height)
	}
	return nil
}
