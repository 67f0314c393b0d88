package lint

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/internal/progress"
	"github.com/thoreinstein/yamlint/internal/source"
)

// Runner validates a batch of sources with a bounded worker pool.
type Runner struct {
	// Workers is the number of concurrent workers. Values <= 0 use
	// runtime.NumCPU.
	Workers int

	// NewEngine builds the Engine owned by each worker. Nil uses NewEngine
	// with no options.
	NewEngine func() *Engine

	// Progress receives one increment per source. Nil disables progress.
	Progress progress.Manager

	Logger *slog.Logger
}

type job struct {
	index int
	src   source.Source
}

// Run validates sources and returns one Result per source in input order.
// It stops early with the context error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, sources []source.Source, allowCustomTags bool) ([]Result, error) {
	results := make([]Result, len(sources))
	if len(sources) == 0 {
		return results, nil
	}

	logger := r.Logger
	if logger == nil {
		logger = logging.NewDiscard()
	}
	newEngine := r.NewEngine
	if newEngine == nil {
		newEngine = func() *Engine { return NewEngine() }
	}
	pm := r.Progress
	if pm == nil {
		pm = progress.NoOp()
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(sources))

	task := pm.StartTask("linting", len(sources))
	defer task.Complete()

	g, gCtx := errgroup.WithContext(ctx)
	jobs := make(chan job)

	g.Go(func() error {
		defer close(jobs)
		for i, src := range sources {
			select {
			case jobs <- job{index: i, src: src}:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			engine := newEngine()
			for j := range jobs {
				if err := gCtx.Err(); err != nil {
					return err
				}
				results[j.index] = validateSource(engine, j.src, allowCustomTags)
				logger.Debug("validated", "file", j.src.ID, "valid", results[j.index].Valid)
				task.Increment(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateSource(engine *Engine, src source.Source, allowCustomTags bool) Result {
	if src.Err != nil {
		return Result{File: src.ID, Message: "unable to read file: " + src.Err.Error()}
	}
	return engine.Validate(string(src.Content), src.ID, allowCustomTags)
}
