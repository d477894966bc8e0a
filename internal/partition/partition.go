// Package partition splits the sample row space into contiguous ranges, one
// per worker.
package partition

// Range is the half-open row interval [Start, End) owned by one worker.
type Range struct {
	Worker int
	Start  int
	End    int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.End - r.Start }

// Split divides [0, n) into p contiguous ranges of n/p rows; the last range
// also takes the n%p remainder. p <= 0 is treated as 1.
func Split(n, p int) []Range {
	if p <= 0 {
		p = 1
	}
	if n < 0 {
		n = 0
	}
	base := n / p
	rem := n % p
	out := make([]Range, p)
	for t := 0; t < p; t++ {
		out[t] = Range{Worker: t, Start: t * base, End: (t + 1) * base}
	}
	out[p-1].End += rem
	return out
}

// Locate maps a global row to the index of the range holding it and the
// row's offset inside that range. ranges must come from Split.
func Locate(ranges []Range, row int) (worker, local int) {
	p := len(ranges)
	base := ranges[0].Len()
	if p > 1 {
		// every range but the last has exactly base rows
		worker = p - 1
		if base > 0 && row/base < p-1 {
			worker = row / base
		}
	}
	return worker, row - ranges[worker].Start
}
