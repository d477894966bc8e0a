package matrix

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgmlst-dists/internal/partition"
)

// build fills cell (r, c) with r*n+c so routing mistakes are visible.
func build(t *testing.T, n, p int) *Matrix {
	t.Helper()
	ranges := partition.Split(n, p)
	blocks := make([]*Block, len(ranges))
	for i, r := range ranges {
		data := make([]uint32, r.Len()*n)
		for j := 0; j < r.Len(); j++ {
			for c := 0; c < n; c++ {
				data[j*n+c] = uint32((r.Start+j)*n + c)
			}
		}
		b, err := NewBlock(r, n, data)
		require.NoError(t, err)
		blocks[i] = b
	}
	m, err := New(n, ranges, blocks)
	require.NoError(t, err)
	return m
}

func TestLookupRoutesAcrossBlocks(t *testing.T) {
	for _, tc := range []struct{ n, p int }{{1, 1}, {5, 1}, {5, 2}, {7, 3}, {3, 8}, {10, 4}} {
		t.Run(fmt.Sprintf("n=%d/p=%d", tc.n, tc.p), func(t *testing.T) {
			m := build(t, tc.n, tc.p)
			assert.Equal(t, tc.n, m.N())
			for r := 0; r < tc.n; r++ {
				row := m.Row(r)
				require.Len(t, row, tc.n)
				for c := 0; c < tc.n; c++ {
					assert.Equal(t, uint32(r*tc.n+c), m.Lookup(r, c))
					assert.Equal(t, row[c], m.Lookup(r, c))
				}
			}
		})
	}
}

func TestRowIsAView(t *testing.T) {
	m := build(t, 4, 2)
	m.Blocks()[1].Data[0] = 999
	assert.Equal(t, uint32(999), m.Lookup(2, 0))
}

func TestNewBlockRejectsWrongSize(t *testing.T) {
	_, err := NewBlock(partition.Range{Start: 0, End: 2}, 3, make([]uint32, 5))
	require.Error(t, err)
}

func TestNewRejectsMismatchedBlocks(t *testing.T) {
	ranges := partition.Split(4, 2)
	b0, _ := NewBlock(ranges[0], 4, make([]uint32, 8))
	_, err := New(4, ranges, []*Block{b0})
	require.Error(t, err)

	b1, _ := NewBlock(ranges[1], 4, make([]uint32, 8))
	_, err = New(4, ranges, []*Block{b1, b0})
	require.Error(t, err)

	_, err = New(5, ranges, []*Block{b0, b1})
	require.Error(t, err)
}

func TestEmptyMatrix(t *testing.T) {
	ranges := partition.Split(0, 3)
	blocks := make([]*Block, 3)
	for i, r := range ranges {
		blocks[i], _ = NewBlock(r, 0, nil)
	}
	m, err := New(0, ranges, blocks)
	require.NoError(t, err)
	assert.Zero(t, m.N())
}
