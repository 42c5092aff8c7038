package mandel

import (
	"fmt"
	"image"
	"image/color"
)

// PixelBuffer is the output pixel store of a render. It is owned by the
// caller and never resized; Compute writes into it through TileViews.
type PixelBuffer struct {
	img *image.RGBA
}

// NewPixelBuffer allocates a width×height buffer with its origin at (0, 0).
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: buffer size %dx%d", ErrInvalidArgument, width, height)
	}
	return &PixelBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Bounds returns the pixel rectangle covered by the buffer.
func (b *PixelBuffer) Bounds() image.Rectangle { return b.img.Rect }

// Image exposes the underlying image, e.g. for encoding.
func (b *PixelBuffer) Image() *image.RGBA { return b.img }

// At returns the colour stored at column x, row y.
func (b *PixelBuffer) At(x, y int) color.RGBA { return b.img.RGBAAt(x, y) }

// View grants write access to the pixels of r, clipped to the buffer.
// Views of disjoint rectangles may be written concurrently.
func (b *PixelBuffer) View(r image.Rectangle) TileView {
	return TileView{img: b.img.SubImage(r).(*image.RGBA)}
}

// TileView is a bounded window onto a PixelBuffer. Writes outside its
// bounds are discarded, so a task holding a view cannot touch pixels of
// another tile.
type TileView struct {
	img *image.RGBA
}

// Bounds returns the rectangle the view may write.
func (v TileView) Bounds() image.Rectangle { return v.img.Rect }

// Set writes c at column x, row y if the pixel lies inside the view.
func (v TileView) Set(x, y int, c color.RGBA) { v.img.SetRGBA(x, y, c) }
