// Package distance implements the capped allele mismatch count used to
// compare two cgMLST profiles.
package distance

// Missing is the allele code for an untyped or ignored locus. It never
// counts as a mismatch against anything.
const Missing uint32 = 0

// DefaultMax is the cap used when none is configured.
const DefaultMax uint32 = 9999

// Capped counts loci where both calls are present and differ.
// The scan stops as soon as the running count reaches maxdiff and
// maxdiff is returned; the comparison happens after each increment, so a
// cap of 0 yields 0 for every pair.
// a and b must have the same length.
func Capped(a, b []uint32, maxdiff uint32) uint32 {
	b = b[:len(a)]
	var diff uint32
	for i, x := range a {
		y := b[i]
		if x != y && x != Missing && y != Missing {
			diff++
			if diff >= maxdiff {
				return maxdiff
			}
		}
	}
	return diff
}
