// Package report writes the sweep result files.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	mandel "github.com/marben/mandel_autotune"
)

// File names written by WriteFiles.
const (
	OptimalFile = "optimal_values.txt"
	TimingFile  = "timing_results.txt"
)

// Seconds formats the elapsed time of s in seconds, six significant digits.
func Seconds(s mandel.Sample) string {
	return strconv.FormatFloat(s.Elapsed.Seconds(), 'g', 6, 64)
}

// WriteOptimal writes the winning grain size and its time.
func WriteOptimal(w io.Writer, opt mandel.Sample) error {
	_, err := fmt.Fprintf(w, "Optimal grain size: %d\nMinimum time: %s\n", opt.GrainSize, Seconds(opt))
	return err
}

// WriteTimings writes a header line followed by one "<grain> <seconds>" line
// per sample, in sweep order.
func WriteTimings(w io.Writer, res mandel.SweepResult) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("grain_size time\n"); err != nil {
		return err
	}
	for _, s := range res.Samples {
		if _, err := fmt.Fprintf(bw, "%d %s\n", s.GrainSize, Seconds(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFiles writes OptimalFile and TimingFile into dir.
func WriteFiles(dir string, res mandel.SweepResult) error {
	opt, err := res.Optimal()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, OptimalFile), func(w io.Writer) error {
		return WriteOptimal(w, opt)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, TimingFile), func(w io.Writer) error {
		return WriteTimings(w, res)
	})
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
