package mandel

import "fmt"

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Named windows onto the set. FullSet is the default render.
var (
	FullSet           = Region{Xmin: -2.2, Xmax: 0.8, Ymin: -1.5, Ymax: 1.5}
	SeahorseValley    = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}
	ElephantValley    = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}
	SpiralMinibrot    = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}
)

// Regions indexes the named windows by their short name.
var Regions = map[string]Region{
	"full":     FullSet,
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"spiral":   SpiralMinibrot,
	"dragon":   ValleyOfTheDragon,
}

// RegionByName looks up one of Regions.
func RegionByName(name string) (Region, error) {
	r, ok := Regions[name]
	if !ok {
		return Region{}, fmt.Errorf("%w: unknown region %q", ErrInvalidArgument, name)
	}
	return r, nil
}

// TopLeft is the corner mapped to pixel (0, 0).
func (r Region) TopLeft() complex128 { return complex(r.Xmin, r.Ymax) }

// BottomRight is the corner just past the last pixel.
func (r Region) BottomRight() complex128 { return complex(r.Xmax, r.Ymin) }

// ComplexWindow maps pixel coordinates onto the complex plane.
// The zero value maps every pixel to 0.
type ComplexWindow struct {
	TopLeft     complex128
	BottomRight complex128
	DeltaX      float64 // real step per column
	DeltaY      float64 // imaginary step per row, negative when rows go down
}

// NewWindow spreads the rectangle spanned by topLeft and bottomRight over a
// width×height pixel grid.
func NewWindow(topLeft, bottomRight complex128, width, height int) (ComplexWindow, error) {
	if width <= 0 || height <= 0 {
		return ComplexWindow{}, fmt.Errorf("%w: window size %dx%d", ErrInvalidArgument, width, height)
	}
	diff := bottomRight - topLeft
	return ComplexWindow{
		TopLeft:     topLeft,
		BottomRight: bottomRight,
		DeltaX:      real(diff) / float64(width),
		DeltaY:      imag(diff) / float64(height),
	}, nil
}

// At returns the sample point of pixel (row, col).
func (w ComplexWindow) At(row, col int) complex128 {
	return w.TopLeft + complex(w.DeltaX*float64(col), w.DeltaY*float64(row))
}
