// mandeltune sweeps tile grain sizes for a parallel Mandelbrot render, writes
// the timings and the optimum, and saves the image rendered with the fastest
// grain size.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	mandel "github.com/marben/mandel_autotune"
	"github.com/marben/mandel_autotune/internal/imgfile"
	"github.com/marben/mandel_autotune/internal/monitor"
	"github.com/marben/mandel_autotune/internal/parallel"
	"github.com/marben/mandel_autotune/internal/report"
)

type options struct {
	cfg       mandel.Config
	outDir    string
	imageName string
	workers   int
	monitor   string
	verbose   bool
}

func main() {
	o := options{cfg: mandel.DefaultConfig()}
	region := flag.String("region", "full", "window to render: full, seahorse, elephant, spiral or dragon")
	flag.StringVar(&o.outDir, "out", ".", "directory for result files and the image")
	flag.StringVar(&o.imageName, "image", "OptimalMandelbrot.png", "image file name; .png, .bmp or .tiff")
	flag.IntVar(&o.cfg.Trials, "trials", 1, "timed renders per grain size, fastest is kept")
	flag.IntVar(&o.workers, "workers", 0, "worker goroutines, 0 for GOMAXPROCS")
	flag.StringVar(&o.monitor, "monitor", "", "serve sweep progress over websocket on this address, e.g. :8080")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	r, err := mandel.RegionByName(*region)
	if err != nil {
		log.Fatalf("-region: %v", err)
	}
	o.cfg.Region = r

	if err := run(o); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(o options) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mandel.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := o.cfg

	pool := parallel.NewPool(o.workers)
	defer pool.Close()

	engine, err := mandel.NewEngine(cfg, pool)
	if err != nil {
		return err
	}
	logger.Info("starting sweep", "width", cfg.Width, "height", cfg.Height,
		"max_grain", cfg.MaxGrain, "trials", cfg.Trials, "workers", pool.Workers())

	tuner := &mandel.Tuner{Engine: engine}

	var hub *monitor.Hub
	if o.monitor != "" {
		hub = monitor.NewHub(logger)
		srv, err := monitor.Listen(o.monitor, hub)
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Serve(); err != nil {
				logger.Error("monitor server", "err", err)
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				logger.Warn("monitor shutdown", "err", err)
			}
		}()
		logger.Info("monitor listening", "addr", srv.Addr().String())
		tuner.OnSample = hub
	}

	// The scratch buffer absorbs every sweep render; the image is rendered
	// once more into a fresh buffer.
	scratch, err := engine.NewBuffer()
	if err != nil {
		return err
	}
	res, err := tuner.Sweep(ctx, scratch)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("sweep interrupted", "samples", len(res.Samples))
		}
		return fmt.Errorf("sweep: %w", err)
	}

	opt, err := res.Optimal()
	if err != nil {
		return err
	}
	logger.Info("optimal grain size", "grain_size", opt.GrainSize, "elapsed", opt.Elapsed)
	if hub != nil {
		hub.Finish(opt)
	}

	img, err := engine.NewBuffer()
	if err != nil {
		return err
	}
	if err := engine.Render(opt.GrainSize, img); err != nil {
		return fmt.Errorf("final render: %w", err)
	}

	if err := report.WriteFiles(o.outDir, res); err != nil {
		return err
	}
	imgPath := filepath.Join(o.outDir, o.imageName)
	if err := imgfile.Save(imgPath, img.Image()); err != nil {
		return err
	}

	logger.Info("results saved", "dir", o.outDir, "image", imgPath)
	return nil
}
