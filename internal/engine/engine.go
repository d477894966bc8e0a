// internal/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"cgmlst-dists/internal/distance"
	"cgmlst-dists/internal/matrix"
	"cgmlst-dists/internal/metrics"
	"cgmlst-dists/internal/partition"
	"cgmlst-dists/internal/profile"
	"cgmlst-dists/internal/progress"
	"cgmlst-dists/internal/resource"
)

// Config is captured once per run and read by every worker.
type Config struct {
	Threads int    // number of workers (>=1)
	MaxDiff uint32 // distance cap

	Budget           *resource.Budget // nil = unlimited
	Log              zerolog.Logger
	ProgressInterval time.Duration
}

// Engine runs distance computations under one configuration.
type Engine struct {
	cfg Config
}

// New returns an engine; Threads below 1 are clamped to 1.
func New(cfg Config) *Engine {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Budget == nil {
		cfg.Budget = resource.NewBudget(0)
	}
	return &Engine{cfg: cfg}
}

// Threads returns the effective worker count.
func (e *Engine) Threads() int { return e.cfg.Threads }

// Compute fills the distance matrix for tbl. Memory for every block is
// reserved before any worker starts; a reservation failure returns a
// *resource.AllocationError and nothing is computed.
func (e *Engine) Compute(ctx context.Context, tbl *profile.Table) (*matrix.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := tbl.Len()
	ranges := partition.Split(n, e.cfg.Threads)

	total, err := resource.MatrixBytes(n, n)
	if err != nil {
		return nil, err
	}
	if err := e.cfg.Budget.Check(total, "distance matrix"); err != nil {
		return nil, err
	}
	blocks, err := e.allocate(ranges, n)
	if err != nil {
		return nil, err
	}
	metrics.MatrixBytes.Set(float64(total))

	var g errgroup.Group
	for _, b := range blocks {
		g.Go(func() error {
			e.work(tbl, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.Release(blocks)
		return nil, err
	}
	return matrix.New(n, ranges, blocks)
}

func (e *Engine) allocate(ranges []partition.Range, n int) ([]*matrix.Block, error) {
	blocks := make([]*matrix.Block, 0, len(ranges))
	for _, r := range ranges {
		size, err := resource.MatrixBytes(r.Len(), n)
		if err != nil {
			e.Release(blocks)
			return nil, err
		}
		if err := e.cfg.Budget.Reserve(size, fmt.Sprintf("worker %d buffer", r.Worker)); err != nil {
			e.Release(blocks)
			return nil, err
		}
		b, err := matrix.NewBlock(r, n, make([]uint32, r.Len()*n))
		if err != nil {
			e.cfg.Budget.Release(size)
			e.Release(blocks)
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// Release returns the memory reserved for blocks to the budget.
func (e *Engine) Release(blocks []*matrix.Block) {
	for _, b := range blocks {
		e.cfg.Budget.Release(uint64(len(b.Data)) * resource.CellSize)
	}
}

// work fills every row of b. It writes nothing outside b.
func (e *Engine) work(tbl *profile.Table, b *matrix.Block) {
	r := b.Range
	log := e.cfg.Log.With().Int("thread", r.Worker).Logger()
	log.Info().Int("from", r.Start).Int("to", r.End).Msg("thread running")
	start := time.Now()

	rep := progress.New(log, "thread working", r.Len(), e.cfg.ProgressInterval)
	maxdiff := e.cfg.MaxDiff
	var pairs, capped uint64
	for j := 0; j < r.Len(); j++ {
		a := tbl.Calls(r.Start + j)
		row := b.Row(j)
		for i := range row {
			d := distance.Capped(a, tbl.Calls(i), maxdiff)
			row[i] = d
			if d == maxdiff {
				capped++
			}
		}
		pairs += uint64(len(row))
		rep.Update(j + 1)
	}

	elapsed := time.Since(start)
	label := strconv.Itoa(r.Worker)
	metrics.PairsComputed.WithLabelValues(label).Add(float64(pairs))
	metrics.PairsCapped.WithLabelValues(label).Add(float64(capped))
	metrics.WorkerDurationSeconds.Observe(elapsed.Seconds())
	log.Info().Dur("elapsed", elapsed).Uint64("pairs", pairs).Msg("thread finished")
}
