package mandel

import "time"

// Sample is the measured wall-clock time of one full render at GrainSize.
type Sample struct {
	GrainSize int
	Elapsed   time.Duration
}

// SweepResult holds the samples of one sweep in the order they were taken,
// which is ascending grain size.
type SweepResult struct {
	Samples []Sample
}

// Optimal returns the fastest sample. Ties go to the earliest one.
func (r SweepResult) Optimal() (Sample, error) {
	if len(r.Samples) == 0 {
		return Sample{}, ErrEmptySweep
	}
	best := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s.Elapsed < best.Elapsed {
			best = s
		}
	}
	return best, nil
}
