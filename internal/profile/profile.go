// Package profile holds the loaded allele-call table shared read-only by the
// distance workers.
package profile

import "fmt"

// Profile is one sample's allele calls, one code per locus.
type Profile struct {
	ID    string
	Calls []uint32
}

// Table is an ordered set of profiles over the same loci.
type Table struct {
	Profiles []Profile
	Loci     int
}

// New validates that every profile carries exactly loci calls.
func New(profiles []Profile, loci int) (*Table, error) {
	for i, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profile %d has an empty ID", i)
		}
		if len(p.Calls) != loci {
			return nil, fmt.Errorf("profile %q has %d calls, expected %d", p.ID, len(p.Calls), loci)
		}
	}
	return &Table{Profiles: profiles, Loci: loci}, nil
}

// Len returns the number of samples.
func (t *Table) Len() int { return len(t.Profiles) }

// IDs returns sample identifiers in load order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.Profiles))
	for i, p := range t.Profiles {
		ids[i] = p.ID
	}
	return ids
}

// Calls returns the allele codes of sample i.
func (t *Table) Calls(i int) []uint32 { return t.Profiles[i].Calls }

// Duplicates lists IDs that occur more than once, in first-seen order.
func (t *Table) Duplicates() []string {
	seen := make(map[string]int, len(t.Profiles))
	var dups []string
	for _, p := range t.Profiles {
		seen[p.ID]++
		if seen[p.ID] == 2 {
			dups = append(dups, p.ID)
		}
	}
	return dups
}
