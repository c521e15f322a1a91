// Package evaluate filters and ranks candidate characters concurrently.
//
// The evaluator does not generate combinations. It consumes the candidates an
// external search produces, drops those that violate the configured Settings,
// and keeps the best few as reporting snapshots.
package evaluate

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/gearopt/internal/game/character"
	"github.com/cory-johannsen/gearopt/internal/observability"
)

// Summary describes one evaluation run.
type Summary struct {
	// Evaluated counts every candidate received.
	Evaluated int64
	// Invalid counts candidates rejected by Settings or carrying a NaN or
	// infinite attribute value.
	Invalid int64
	// Results holds the winners best first; len(Results) <= the configured top-k.
	Results []character.ResultCharacter
}

// Evaluator fans candidates out to a fixed number of workers.
type Evaluator struct {
	settings character.Settings
	workers  int
	topK     int
	logger   *zap.Logger
}

// NewEvaluator creates an Evaluator.
//
// Precondition: workers >= 1; topK >= 1; logger must be non-nil.
// Postcondition: Returns an Evaluator holding its own copy of settings.
func NewEvaluator(settings character.Settings, workers, topK int, logger *zap.Logger) (*Evaluator, error) {
	if workers < 1 {
		return nil, errors.New("workers must be >= 1")
	}
	if topK < 1 {
		return nil, errors.New("top-k must be >= 1")
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &Evaluator{settings: settings, workers: workers, topK: topK, logger: logger}, nil
}

type workerStats struct {
	evaluated int64
	invalid   int64
}

// Run drains candidates until the channel is closed or ctx is done.
//
// Each worker owns the values it receives and a private TopK; nothing is
// shared between workers until they have all returned.
//
// Postcondition: Returns the Summary, or ctx.Err() if ctx ended first.
func (e *Evaluator) Run(ctx context.Context, candidates <-chan character.Character) (Summary, error) {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	keepers := make([]*TopK, e.workers)
	stats := make([]workerStats, e.workers)
	for w := 0; w < e.workers; w++ {
		w := w
		keepers[w] = NewTopK(e.topK)
		g.Go(func() error {
			return e.work(gctx, w, candidates, keepers[w], &stats[w])
		})
	}
	err := g.Wait()
	if err == nil {
		// A worker may see the channel close before it sees cancellation.
		err = ctx.Err()
	}
	if err != nil {
		e.logger.Warn("evaluation aborted", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return Summary{}, err
	}

	best := NewTopK(e.topK)
	var sum Summary
	for w := range keepers {
		best.Merge(keepers[w])
		sum.Evaluated += stats[w].evaluated
		sum.Invalid += stats[w].invalid
	}
	winners := best.Sorted()
	sum.Results = make([]character.ResultCharacter, len(winners))
	for i := range winners {
		sum.Results[i] = character.NewResultCharacter(&winners[i])
	}

	fields := []zap.Field{
		zap.Int64("evaluated", sum.Evaluated),
		zap.Int64("invalid", sum.Invalid),
		zap.Int("results", len(sum.Results)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if len(winners) > 0 {
		fields = append(fields, zap.Dict("best", observability.CandidateFields(&winners[0])...))
	}
	e.logger.Info("evaluation complete", fields...)
	return sum, nil
}

func (e *Evaluator) work(ctx context.Context, id int, in <-chan character.Character, keep *TopK, st *workerStats) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-in:
			if !ok {
				e.logger.Debug("worker drained",
					zap.Int("worker", id),
					zap.Int64("evaluated", st.evaluated),
					zap.Int64("invalid", st.invalid),
				)
				return nil
			}
			st.evaluated++
			if c.IsInvalid(&e.settings) || !c.Attributes.Finite() || !c.BaseAttributes.Finite() {
				st.invalid++
				continue
			}
			keep.Offer(&c)
		}
	}
}

// EvaluateAll feeds cs through Run.
//
// Postcondition: Returns the Summary, or ctx.Err() if ctx ended first.
func (e *Evaluator) EvaluateAll(ctx context.Context, cs []character.Character) (Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := make(chan character.Character, e.workers*2)
	go func() {
		defer close(in)
		for i := range cs {
			select {
			case in <- cs[i]:
			case <-ctx.Done():
				return
			}
		}
	}()
	return e.Run(ctx, in)
}
