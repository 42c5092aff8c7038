package mandel

import "fmt"

// Config describes one image render and its grain-size sweep.
type Config struct {
	Width, Height  int
	Region         Region
	IterationLimit int

	// MaxGrain is the largest grain size the sweep may try (inclusive).
	MaxGrain int

	// Trials is the number of timed runs per grain size. The fastest run
	// is recorded. 1 measures every grain size exactly once.
	Trials int
}

// DefaultConfig renders the full set at 800×800 and sweeps grain sizes up to
// the image height with a single trial each.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         800,
		Region:         FullSet,
		IterationLimit: IterationLimit,
		MaxGrain:       800,
		Trials:         1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidArgument, c.Width, c.Height)
	case c.IterationLimit <= 0:
		return fmt.Errorf("%w: iteration limit %d", ErrInvalidArgument, c.IterationLimit)
	case c.MaxGrain < 1:
		return fmt.Errorf("%w: max grain size %d", ErrInvalidArgument, c.MaxGrain)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials %d", ErrInvalidArgument, c.Trials)
	}
	return nil
}

// Window returns the pixel to complex-plane mapping of c.
func (c Config) Window() (ComplexWindow, error) {
	return NewWindow(c.Region.TopLeft(), c.Region.BottomRight(), c.Width, c.Height)
}
