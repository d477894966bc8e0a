// Package engine computes the all-pairs distance matrix.
//
// The row space is split into one contiguous range per worker. Every worker
// owns a single matrix.Block and fills complete rows for its range (the
// diagonal and both orientations of each pair included), so workers share
// nothing but the read-only profile table. Compute returns only after every
// worker has finished.
package engine
