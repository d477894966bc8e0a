package alleles

import (
	"math"
	"strings"
)

// chewBBACA writes PLOT3/PLOT5 for loci on contig tips. They end in digits,
// so they are rewritten to a zero call of the same width before letters are
// blanked; otherwise they would parse as allele 3 or 5.
var plotReplacer = strings.NewReplacer("PLOT3", "    0", "PLOT5", "    0")

// Normalize converts one allele-call token to its numeric code.
//
// Letters are blanked, the remainder is parsed like C atoi and the sign is
// dropped, so INF-123 becomes 123 while LNF, NIPH, ASM and friends become 0.
// Values beyond uint32 saturate.
func Normalize(token string) uint32 {
	s := plotReplacer.Replace(token)
	s = strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return ' '
		}
		return r
	}, s)
	return atoiAbs(s)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func atoiAbs(s string) uint32 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	var v uint64
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		v = v*10 + uint64(s[i]-'0')
		if v > math.MaxUint32 {
			return math.MaxUint32
		}
	}
	return uint32(v)
}
