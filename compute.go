package mandel

import (
	"fmt"
	"image"
)

// Compute renders the rectangle rows×cols of w into buf. The rectangle is
// split into tiles of at most grain×grain pixels and every tile is handed to
// ex as one task. The split is fixed before dispatch. Compute returns once
// all tiles have been written.
//
// An empty rectangle is a no-op.
func Compute(rows, cols Span, grain int, w ComplexWindow, buf *PixelBuffer, ex TileExecutor) error {
	return computeLimit(rows, cols, grain, w, IterationLimit, buf, ex)
}

func computeLimit(rows, cols Span, grain int, w ComplexWindow, limit int, buf *PixelBuffer, ex TileExecutor) error {
	if grain <= 0 {
		return fmt.Errorf("%w: grain size %d", ErrInvalidArgument, grain)
	}
	if rows.Min > rows.Max || cols.Min > cols.Max {
		return fmt.Errorf("%w: rows %v cols %v", ErrInvalidArgument, rows, cols)
	}
	r := Rect(rows, cols)
	if r.Empty() {
		return nil
	}
	if buf == nil || !r.In(buf.Bounds()) {
		return fmt.Errorf("%w: rectangle %v outside buffer", ErrInvalidArgument, r)
	}
	if ex == nil {
		return fmt.Errorf("%w: nil executor", ErrInvalidArgument)
	}

	tiles := SplitTiles(r, grain)
	tasks := make([]func(), len(tiles))
	for i, tile := range tiles {
		view := buf.View(tile)
		tasks[i] = func() { renderTile(view, w, limit) }
	}

	Logger().Debug("dispatching tiles", "rect", r, "grain_size", grain, "tiles", len(tiles))
	if err := ex.ExecuteAll(tasks); err != nil {
		return fmt.Errorf("%w: execute tiles: %w", ErrResourceExhausted, err)
	}
	return nil
}

// renderTile writes every pixel of the view once.
func renderTile(view TileView, w ComplexWindow, limit int) {
	b := view.Bounds()
	for row := b.Min.Y; row < b.Max.Y; row++ {
		for col := b.Min.X; col < b.Max.X; col++ {
			k := EscapeLimit(w.At(row, col), limit)
			view.Set(col, row, ToColorLimit(k, limit))
		}
	}
}

// Engine renders whole images of one Config on one executor.
type Engine struct {
	cfg    Config
	window ComplexWindow
	ex     TileExecutor
}

// NewEngine validates cfg and binds it to ex.
func NewEngine(cfg Config, ex TileExecutor) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ex == nil {
		return nil, fmt.Errorf("%w: nil executor", ErrInvalidArgument)
	}
	w, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, window: w, ex: ex}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// NewBuffer allocates a buffer covering the full image.
func (e *Engine) NewBuffer() (*PixelBuffer, error) {
	return NewPixelBuffer(e.cfg.Width, e.cfg.Height)
}

// Render computes the full image into buf using the given grain size.
func (e *Engine) Render(grain int, buf *PixelBuffer) error {
	return e.RenderRect(image.Rect(0, 0, e.cfg.Width, e.cfg.Height), grain, buf)
}

// RenderRect computes only the pixels of r.
func (e *Engine) RenderRect(r image.Rectangle, grain int, buf *PixelBuffer) error {
	rows := Span{Min: r.Min.Y, Max: r.Max.Y}
	cols := Span{Min: r.Min.X, Max: r.Max.X}
	return computeLimit(rows, cols, grain, e.window, e.cfg.IterationLimit, buf, e.ex)
}
