package mandel

import (
	"context"
	"fmt"
	"time"
)

// GrainSizes returns the grain sizes a sweep up to maxGrain tries: every
// size below 10, then steps of 10, stopping at the last value <= maxGrain.
func GrainSizes(maxGrain int) []int {
	var sizes []int
	for g := 1; g <= maxGrain; {
		sizes = append(sizes, g)
		if g < 10 {
			g++
		} else {
			g += 10
		}
	}
	return sizes
}

// Tuner times full renders of an Engine across grain sizes.
type Tuner struct {
	Engine *Engine

	// OnSample, if set, is notified after every measured grain size.
	OnSample SampleObserver

	// Now is the clock used for timing. Defaults to time.Now.
	Now func() time.Time
}

// Sweep renders the full image into scratch once per trial for every grain
// size up to the engine's MaxGrain, one render at a time, and records the
// elapsed wall-clock time of each grain size.
//
// ctx is only checked between renders. On cancellation the samples taken so
// far are returned together with ctx.Err().
func (t *Tuner) Sweep(ctx context.Context, scratch *PixelBuffer) (SweepResult, error) {
	return t.SweepTo(ctx, t.Engine.Config().MaxGrain, scratch)
}

// SweepTo is Sweep with an explicit upper grain size.
func (t *Tuner) SweepTo(ctx context.Context, maxGrain int, scratch *PixelBuffer) (SweepResult, error) {
	now := t.Now
	if now == nil {
		now = time.Now
	}
	trials := t.Engine.Config().Trials
	log := Logger()

	sizes := GrainSizes(maxGrain)
	res := SweepResult{Samples: make([]Sample, 0, len(sizes))}

	for _, grain := range sizes {
		var best time.Duration
		for trial := range trials {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			start := now()
			if err := t.Engine.Render(grain, scratch); err != nil {
				return res, fmt.Errorf("grain size %d: %w", grain, err)
			}
			elapsed := now().Sub(start)
			if trial == 0 || elapsed < best {
				best = elapsed
			}
		}

		s := Sample{GrainSize: grain, Elapsed: best}
		res.Samples = append(res.Samples, s)
		log.Info("measured grain size", "grain_size", grain, "elapsed", best)
		if t.OnSample != nil {
			t.OnSample.ObserveSample(s)
		}
	}

	return res, nil
}
