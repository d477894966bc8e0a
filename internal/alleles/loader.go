// Package alleles reads chewBBACA-style allele call tables into a
// profile.Table.
//
// The first line is a header and only its field count is used. Every other
// line is a sample ID followed by one call per locus, tab separated.
package alleles

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"cgmlst-dists/internal/profile"
)

// DefaultMaxRows is the default ceiling on the number of samples.
const DefaultMaxRows = 100000

// Options controls loading.
type Options struct {
	// MaxRows caps the number of samples; <= 0 means DefaultMaxRows.
	MaxRows int
	// OnRow, if set, is called after each sample with the running count.
	OnRow func(rows int)
}

func isDelim(r rune) bool { return r == '\t' || r == '\r' || r == '\n' }

// fields splits on tabs and line endings, collapsing runs of separators.
func fields(s string) []string { return strings.FieldsFunc(s, isDelim) }

// Load parses an allele call table. Any structural defect aborts the load.
func Load(r io.Reader, opt Options) (*profile.Table, error) {
	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	br := bufio.NewReaderSize(r, 1<<20)

	var (
		profiles []profile.Profile
		loci     int
		line     int
	)
	for {
		s, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if s == "" && err != nil {
			break
		}
		line++
		s = strings.TrimRight(s, "\r\n")

		if line == 1 {
			loci = len(fields(s)) - 1
			if loci < 0 {
				loci = 0
			}
		} else {
			p, perr := parseRow(s, line, loci)
			if perr != nil {
				return nil, perr
			}
			if len(profiles) == maxRows {
				return nil, &CapacityError{Limit: maxRows}
			}
			profiles = append(profiles, p)
			if opt.OnRow != nil {
				opt.OnRow(len(profiles))
			}
		}
		if err != nil {
			break
		}
	}
	return profile.New(profiles, loci)
}

func parseRow(s string, line, loci int) (profile.Profile, error) {
	id, rest, _ := strings.Cut(s, "\t")
	if strings.TrimSpace(id) == "" {
		return profile.Profile{}, &EmptyIDError{Line: line}
	}
	toks := fields(rest)
	if len(toks) != loci {
		return profile.Profile{}, &RowShapeError{Line: line, Expected: loci + 1, Actual: len(toks) + 1}
	}
	calls := make([]uint32, loci)
	for i, tok := range toks {
		calls[i] = Normalize(tok)
	}
	return profile.Profile{ID: id, Calls: calls}, nil
}
