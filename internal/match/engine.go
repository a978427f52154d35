package match

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/namesake/internal/config"
	"github.com/standardbeagle/namesake/internal/debug"
	"github.com/standardbeagle/namesake/internal/entity"
	"github.com/standardbeagle/namesake/internal/names"
)

// Pair is one query/result comparison in a batch
type Pair struct {
	Query  entity.Entity
	Result entity.Entity
}

// Engine scores entity pairs with a shared name cache
type Engine struct {
	analyzer *names.Analyzer
	scoring  *config.ScoringConfig
	workers  int
}

// NewEngine creates an engine; a nil config uses the defaults
func NewEngine(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	workers := cfg.Engine.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	scoring := cfg.Scoring
	return &Engine{
		analyzer: names.NewAnalyzer(cfg.Engine.CacheSize),
		scoring:  &scoring,
		workers:  workers,
	}
}

// Workers returns the batch concurrency limit
func (e *Engine) Workers() int {
	return e.workers
}

// Analyzer returns the engine's name analyzer
func (e *Engine) Analyzer() *names.Analyzer {
	return e.analyzer
}

// Match compares two entities
func (e *Engine) Match(query, result entity.Entity) Result {
	return nameMatch(e.analyzer.EntityNames, query, result, e.scoring)
}

// Batch scores pairs concurrently, at most Workers at a time. Results keep
// the input order. Once ctx is done no new pair is started and ctx.Err() is
// returned along with the results computed so far.
func (e *Engine) Batch(ctx context.Context, pairs []Pair) ([]Result, error) {
	results := make([]Result, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range pairs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = e.Match(pairs[i].Query, pairs[i].Result)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	stats := e.analyzer.CacheStats()
	debug.LogFields("BATCH", "batch finished",
		zap.Int("pairs", len(pairs)),
		zap.Int("workers", e.workers),
		zap.Int64("cache_hits", stats.Hits),
		zap.Int64("cache_misses", stats.Misses),
		zap.Error(err))
	return results, err
}
