// Package resource sizes and reserves the memory for the distance matrix
// before any block is allocated.
package resource

import (
	"fmt"
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/semaphore"
)

// CellSize is the size in bytes of one distance cell.
const CellSize = 4

// AllocationError reports a memory request that cannot be satisfied.
type AllocationError struct {
	Requested uint64
	Limit     uint64
	What      string
}

func (e *AllocationError) Error() string {
	if e.Limit == 0 {
		return fmt.Sprintf("could not allocate %s for %s", humanize.IBytes(e.Requested), e.What)
	}
	return fmt.Sprintf("could not allocate %s for %s (limit %s)",
		humanize.IBytes(e.Requested), e.What, humanize.IBytes(e.Limit))
}

// MatrixBytes returns rows*cols*CellSize, failing on overflow.
func MatrixBytes(rows, cols int) (uint64, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("negative matrix shape %dx%d", rows, cols)
	}
	hi, cells := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || cells > math.MaxUint64/CellSize {
		return 0, &AllocationError{Requested: math.MaxUint64, What: fmt.Sprintf("%dx%d matrix", rows, cols)}
	}
	b := cells * CellSize
	if b > uint64(math.MaxInt) {
		return 0, &AllocationError{Requested: b, What: fmt.Sprintf("%dx%d matrix", rows, cols)}
	}
	return b, nil
}

// Budget tracks reservations against an optional hard limit.
type Budget struct {
	limit uint64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Uint64
}

// NewBudget returns a budget of limit bytes; 0 means unlimited.
func NewBudget(limit uint64) *Budget {
	b := &Budget{limit: limit}
	if limit > 0 {
		if limit > math.MaxInt64 {
			limit = math.MaxInt64
		}
		b.sem = semaphore.NewWeighted(int64(limit))
	}
	return b
}

// Limit returns the configured limit in bytes (0 = unlimited).
func (b *Budget) Limit() uint64 { return b.limit }

// Used returns the bytes currently reserved.
func (b *Budget) Used() uint64 { return b.used.Load() }

// Check fails if n bytes could never fit in the budget.
func (b *Budget) Check(n uint64, what string) error {
	if b.limit > 0 && n > b.limit {
		return &AllocationError{Requested: n, Limit: b.limit, What: what}
	}
	return nil
}

// Reserve claims n bytes without blocking.
func (b *Budget) Reserve(n uint64, what string) error {
	if n == 0 {
		return nil
	}
	if b.sem != nil && (n > math.MaxInt64 || !b.sem.TryAcquire(int64(n))) {
		return &AllocationError{Requested: n, Limit: b.limit, What: what}
	}
	b.used.Add(n)
	return nil
}

// Release returns n previously reserved bytes.
func (b *Budget) Release(n uint64) {
	if n == 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(int64(n))
	}
	b.used.Add(^(n - 1))
}
