package mandel

import "image"

// Span is the half-open integer interval [Min, Max).
type Span struct {
	Min, Max int
}

// Len returns the number of indices in s, 0 for malformed spans.
func (s Span) Len() int { return max(s.Max-s.Min, 0) }

// Rect builds the rectangle with rows along Y and columns along X.
func Rect(rows, cols Span) image.Rectangle {
	return image.Rect(cols.Min, rows.Min, cols.Max, rows.Max)
}

// SplitTiles splits r into tiles of at most grain×grain pixels, row by row.
// Tiles at the right and bottom edges are smaller if r is not divisible.
// grain must be positive.
func SplitTiles(r image.Rectangle, grain int) []image.Rectangle {
	if grain <= 0 {
		panic("grain size must be positive")
	}
	if r.Empty() {
		return nil
	}

	w := r.Dx()
	h := r.Dy()
	tiles := make([]image.Rectangle, 0, ceilDiv(w, grain)*ceilDiv(h, grain))

	for oy := 0; oy < h; oy += grain {
		th := min(grain, h-oy)

		for ox := 0; ox < w; ox += grain {
			tw := min(grain, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
