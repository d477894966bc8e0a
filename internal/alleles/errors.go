package alleles

import "fmt"

// RowShapeError reports a data line whose field count differs from the header.
type RowShapeError struct {
	Line     int
	Expected int
	Actual   int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("row %d had %d cols, expected %d", e.Line, e.Actual, e.Expected)
}

// EmptyIDError reports a data line with a blank sample identifier.
type EmptyIDError struct {
	Line int
}

func (e *EmptyIDError) Error() string {
	return fmt.Sprintf("row %d has an empty ID in first column", e.Line)
}

// CapacityError reports more samples than the configured ceiling.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("too many rows, can only handle %d", e.Limit)
}
