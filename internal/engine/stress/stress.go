// Package stress implements the concurrent clone/release runner used to
// check live-handle accounting under contention.
package stress

import (
	"context"
	"time"

	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/rcstring/internal/core/ports"
	"go.trai.ch/zerr"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many iterations a worker runs between context checks.
const cancelCheckInterval = 1024

// Options configures one stress run.
type Options struct {
	Workers    int
	Iterations int
}

// Result summarises a finished run.
type Result struct {
	Workers    int
	Iterations int
	// Operations is the number of clone/release pairs performed.
	Operations int64
	Initial    int64
	Peak       int64
	Final      int64
	Elapsed    time.Duration
}

// Runner clones and releases one shared string from many goroutines.
type Runner struct {
	logger ports.Logger
}

// New creates a new Runner.
func New(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts opts.Workers goroutines that each clone and release text
// opts.Iterations times. It returns ErrHandleLeak when the live-handle count
// of text differs from its starting value once all workers are done.
func (r *Runner) Run(ctx context.Context, text rcstring.SharedString, opts Options) (Result, error) {
	if opts.Workers < 1 {
		return Result{}, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "workers must be positive"), "workers", opts.Workers)
	}
	if opts.Iterations < 0 {
		return Result{}, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "iterations must not be negative"), "iterations", opts.Iterations)
	}

	initial := text.LiveHandleCount()
	peak := atomic.NewInt64(initial)
	ops := atomic.NewInt64(0)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := range opts.Workers {
		g.Go(func() error {
			for i := range opts.Iterations {
				if i%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return zerr.With(zerr.Wrap(err, "stress run interrupted"), "worker", w)
					}
				}
				handle := text.Clone()
				observePeak(peak, handle.LiveHandleCount())
				handle.Release()
				ops.Inc()
			}
			r.logger.Debug("stress worker finished", "worker", w, "iterations", opts.Iterations)
			return nil
		})
	}
	err := g.Wait()

	result := Result{
		Workers:    opts.Workers,
		Iterations: opts.Iterations,
		Operations: ops.Load(),
		Initial:    initial,
		Peak:       peak.Load(),
		Final:      text.LiveHandleCount(),
		Elapsed:    time.Since(start),
	}
	if err != nil {
		return result, err
	}
	if result.Final != result.Initial {
		leak := zerr.With(zerr.Wrap(domain.ErrHandleLeak, "stress run leaked handles"), "initial", result.Initial)
		return result, zerr.With(leak, "final", result.Final)
	}
	return result, nil
}

func observePeak(peak *atomic.Int64, n int64) {
	for {
		cur := peak.Load()
		if n <= cur || peak.CompareAndSwap(cur, n) {
			return
		}
	}
}
