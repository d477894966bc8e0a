// Package matrix exposes the per-worker distance blocks as one N×N matrix.
//
// Each Block is filled by exactly one worker. Once the workers have joined,
// a Matrix routes (row, col) lookups to the block that owns the row without
// copying any data.
package matrix

import (
	"fmt"

	"cgmlst-dists/internal/partition"
)

// Block holds full distance rows for one worker's range.
type Block struct {
	Range partition.Range
	Width int
	Data  []uint32
}

// NewBlock wraps data as the rows of r; len(data) must be r.Len()*width.
func NewBlock(r partition.Range, width int, data []uint32) (*Block, error) {
	if want := r.Len() * width; len(data) != want {
		return nil, fmt.Errorf("block %d: have %d cells, need %d", r.Worker, len(data), want)
	}
	return &Block{Range: r, Width: width, Data: data}, nil
}

// Row returns local row j as a slice view into the block.
func (b *Block) Row(j int) []uint32 {
	return b.Data[j*b.Width : (j+1)*b.Width : (j+1)*b.Width]
}

// Rows returns the number of rows in the block.
func (b *Block) Rows() int { return b.Range.Len() }

// Matrix is a read-only routing layer over independently owned blocks.
type Matrix struct {
	n      int
	ranges []partition.Range
	blocks []*Block
}

// New assembles blocks, which must be ordered by worker and match ranges.
func New(n int, ranges []partition.Range, blocks []*Block) (*Matrix, error) {
	if len(ranges) == 0 || len(ranges) != len(blocks) {
		return nil, fmt.Errorf("matrix: %d ranges for %d blocks", len(ranges), len(blocks))
	}
	for i, b := range blocks {
		if b == nil || b.Range != ranges[i] {
			return nil, fmt.Errorf("matrix: block %d does not match its range", i)
		}
		if b.Width != n {
			return nil, fmt.Errorf("matrix: block %d has width %d, expected %d", i, b.Width, n)
		}
	}
	if ranges[len(ranges)-1].End != n {
		return nil, fmt.Errorf("matrix: ranges cover %d rows, expected %d", ranges[len(ranges)-1].End, n)
	}
	return &Matrix{n: n, ranges: ranges, blocks: blocks}, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// Blocks returns the underlying blocks in row order.
func (m *Matrix) Blocks() []*Block { return m.blocks }

// Row returns the full distance row of sample row.
func (m *Matrix) Row(row int) []uint32 {
	w, j := partition.Locate(m.ranges, row)
	return m.blocks[w].Row(j)
}

// Lookup returns the distance between samples row and col.
func (m *Matrix) Lookup(row, col int) uint32 {
	return m.Row(row)[col]
}
