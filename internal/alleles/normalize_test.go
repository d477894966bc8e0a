package alleles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"0", 0},
		{"1", 1},
		{"1234", 1234},
		{"INF-123", 123},
		{"-42", 42},
		{"+7", 7},
		{"LNF", 0},
		{"NIPH", 0},
		{"NIPHEM", 0},
		{"ASM", 0},
		{"ALM", 0},
		{"PLOT3", 0},
		{"PLOT5", 0},
		{"plot3", 3}, // case-sensitive: only the upper-case codes are special
		{"12abc", 12},
		{"*5", 0},
		{"", 0},
		{"   ", 0},
		{"99999999999", math.MaxUint32},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeIsPure(t *testing.T) {
	tok := "INF-9"
	_ = Normalize(tok)
	assert.Equal(t, "INF-9", tok)
}
