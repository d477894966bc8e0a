package writers

import "fmt"

// Mode selects which part of each symmetric row is written. Bit 0 includes
// the lower triangle, bit 1 the upper; the diagonal is always written.
type Mode int

const (
	ModeLower Mode = 1
	ModeUpper Mode = 2
	ModeFull  Mode = ModeLower | ModeUpper
)

// ParseMode validates a numeric mode.
func ParseMode(v int) (Mode, error) {
	m := Mode(v)
	if m < ModeLower || m > ModeFull {
		return 0, fmt.Errorf("invalid mode %d (want 1=lower-tri, 2=upper-tri, 3=full)", v)
	}
	return m, nil
}

// Span returns the half-open column range [start, end) written for row j of
// an n-sample matrix.
func (m Mode) Span(j, n int) (start, end int) {
	start, end = j, j+1
	if m&ModeLower != 0 {
		start = 0
	}
	if m&ModeUpper != 0 {
		end = n
	}
	return start, end
}

func (m Mode) String() string {
	switch m {
	case ModeLower:
		return "lower"
	case ModeUpper:
		return "upper"
	case ModeFull:
		return "full"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
