package colorsource

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/colorsource/internal/parallel"
)

// ErrInvalidGrid is returned when a grid has non-positive dimensions or a
// pixel slice of the wrong length.
var ErrInvalidGrid = errors.New("colorsource: invalid grid")

// Grid is a W x H buffer of resolved colors, row-major.
type Grid struct {
	Width  int
	Height int
	Pix    []RGBA
}

// NewGrid allocates a grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return &Grid{Width: width, Height: height, Pix: make([]RGBA, width*height)}, nil
}

// At returns the color at (x, y).
func (g *Grid) At(x, y int) RGBA {
	return g.Pix[y*g.Width+x]
}

// Image converts the grid to an 8-bit NRGBA image, clamping components.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		for x := range g.Width {
			img.Set(x, y, g.At(x, y).Color())
		}
	}
	return img
}

// TexelCenter returns the normalized coordinate of the center of texel
// (x, y) in a width x height grid.
func TexelCenter(x, y, width, height int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(x) + 0.5) / float64(width),
		(float64(y) + 0.5) / float64(height),
	}
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*evaluatorOptions)

type evaluatorOptions struct {
	workers    int
	bandHeight int
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		o.workers = n
	}
}

// WithBandHeight sets how many rows each unit of work covers.
func WithBandHeight(rows int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		o.bandHeight = rows
	}
}

// Evaluator resolves a descriptor over every texel of a grid in parallel.
// It is the CPU-side stand-in for per-fragment GPU dispatch.
//
// Evaluator is safe for concurrent use. Call Close to stop its workers.
type Evaluator struct {
	pool       *parallel.WorkerPool
	bandHeight int
}

// NewEvaluator creates an evaluator and starts its workers.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	o := evaluatorOptions{bandHeight: parallel.DefaultBandHeight}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Evaluator{
		pool:       parallel.NewWorkerPool(o.workers),
		bandHeight: o.bandHeight,
	}
	Logger().Info("colorsource: evaluator started",
		slog.Int("workers", e.pool.Workers()),
		slog.Int("bandHeight", e.bandHeight))
	return e
}

// Evaluate fills dst with d resolved at the texel center of every cell.
//
// Bands not yet started when ctx is canceled are skipped and ctx.Err() is
// returned; dst is then only partially written. If every band ran, the
// result is nil even when ctx was canceled meanwhile.
func (e *Evaluator) Evaluate(ctx context.Context, d *Descriptor, dst *Grid) error {
	return e.EvaluateFunc(ctx, dst, func(x, y int) RGBA {
		return d.Resolve(TexelCenter(x, y, dst.Width, dst.Height))
	})
}

// EvaluateFunc fills dst with fn(x, y) for every cell, in parallel.
// fn must be safe for concurrent use.
func (e *Evaluator) EvaluateFunc(ctx context.Context, dst *Grid, fn func(x, y int) RGBA) error {
	if dst == nil || dst.Width <= 0 || dst.Height <= 0 || len(dst.Pix) != dst.Width*dst.Height {
		return ErrInvalidGrid
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var skipped atomic.Bool
	bands := parallel.SplitRows(dst.Height, e.bandHeight)
	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() {
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			for y := band.Y0; y < band.Y1; y++ {
				row := dst.Pix[y*dst.Width : (y+1)*dst.Width]
				for x := range row {
					row[x] = fn(x, y)
				}
			}
		}
	}
	e.pool.ExecuteAll(work)

	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}

// Close stops the evaluator's workers. Close is safe to call multiple times.
func (e *Evaluator) Close() {
	e.pool.Close()
}
