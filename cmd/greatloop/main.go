// Command greatloop computes a short closed tour over a prepared table of
// geographic locations.
//
// It is the host process around the in-memory optimizer core: it loads the
// location CSV, builds the distance matrix, runs the annealing engine (or a
// concurrent race of engines), rotates the result to the configured anchor,
// and writes the tour back out as a timestamped CSV. All I/O happens here,
// before and after the core runs — never interleaved with it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/greatloop/greatloop/anneal"
	"github.com/greatloop/greatloop/geo"
	"github.com/greatloop/greatloop/tourio"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Ctrl-C / SIGTERM cancels the run; the engine reports TimedOut with
	// the tour it had, which still gets written out.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *Config, logger *zap.Logger) error {
	// Load the prepared location table.
	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	locs, err := tourio.ReadLocations(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("read locations: %w", err)
	}

	set, err := geo.NewSet(locs)
	if err != nil {
		return fmt.Errorf("validate locations: %w", err)
	}
	logger.Info("locations loaded",
		zap.String("input", cfg.Input),
		zap.Int("count", set.Len()),
	)

	// Build the pairwise distance matrix, in parallel across the cores.
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	buildStart := time.Now()
	m, err := geo.BuildMatrix(set, geo.WithWorkers(workers))
	if err != nil {
		return fmt.Errorf("build matrix: %w", err)
	}
	logger.Info("distance matrix built",
		zap.Int("order", m.N()),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(buildStart)),
	)

	// Assemble engine options from the schedule config.
	opts := []anneal.Option{
		anneal.WithInitialTemperature(cfg.Schedule.InitialTemperature),
		anneal.WithCoolingRate(cfg.Schedule.CoolingRate),
		anneal.WithMinTemperature(cfg.Schedule.MinTemperature),
		anneal.WithMaxSteps(cfg.Schedule.MaxSteps),
		anneal.WithSeed(cfg.Seed),
	}
	if cfg.Schedule.TimeBudget > 0 {
		opts = append(opts, anneal.WithTimeBudget(cfg.Schedule.TimeBudget))
	}
	if cfg.AnchorID != "" {
		opts = append(opts, anneal.WithAnchor(cfg.AnchorID))
	}
	if cfg.Verbose {
		opts = append(opts, anneal.WithLogger(logger, 5000))
	}

	// Anneal: a single run, or a deterministic race of restarts.
	var res anneal.Result
	if cfg.Restarts > 1 {
		res, err = anneal.Race(ctx, set, m, cfg.Restarts, opts...)
	} else {
		var eng *anneal.Engine
		if eng, err = anneal.New(set, m, opts...); err == nil {
			res, err = eng.Run(ctx)
		}
	}
	if err != nil {
		return fmt.Errorf("anneal: %w", err)
	}
	logger.Info("tour computed",
		zap.Float64("miles", res.Length),
		zap.Stringer("state", res.State),
		zap.Int("steps", res.Steps),
		zap.Int("accepted", res.Accepted),
		zap.Int("uphill", res.Uphill),
		zap.Duration("elapsed", res.Elapsed),
	)

	// Persist the tour with a timestamped name next to the input data.
	outPath := filepath.Join(cfg.OutDir,
		fmt.Sprintf("anneal_out_%s.csv", time.Now().Format("20060102_150405")))
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = tourio.WriteTour(out, res.Tour); err != nil {
		_ = out.Close()

		return fmt.Errorf("write tour: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Info("tour written", zap.String("output", outPath))

	return nil
}

// newLogger builds the process logger: production JSON by default, console
// development output with debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
