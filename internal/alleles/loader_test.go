package alleles

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExample(t *testing.T) {
	in := "ID\tL1\tL2\nS1\t1\t2\nS2\t1\t3\nS3\t2\t2\n"
	tbl, err := Load(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Loci)
	assert.Equal(t, []string{"S1", "S2", "S3"}, tbl.IDs())
	assert.Equal(t, []uint32{1, 3}, tbl.Calls(1))
}

func TestLoadNormalizesCalls(t *testing.T) {
	in := "FILE\tA\tB\tC\tD\r\nx\tINF-5\tLNF\tPLOT3\t7\r\n"
	tbl, err := Load(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{5, 0, 0, 7}, tbl.Calls(0))
}

func TestLoadWithoutTrailingNewline(t *testing.T) {
	tbl, err := Load(strings.NewReader("ID\tL1\nS1\t4"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{4}, tbl.Calls(0))
}

func TestLoadEmptyInput(t *testing.T) {
	tbl, err := Load(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())

	tbl, err = Load(strings.NewReader("ID\tL1\tL2\n"), Options{})
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
	assert.Equal(t, 2, tbl.Loci)
}

func TestLoadRowShapeMismatch(t *testing.T) {
	in := "ID\tL1\tL2\nS1\t1\t2\nS2\t1\n"
	_, err := Load(strings.NewReader(in), Options{})
	var re *RowShapeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 3, re.Line)
	assert.Equal(t, 3, re.Expected)
	assert.Equal(t, 2, re.Actual)
	assert.Equal(t, "row 3 had 2 cols, expected 3", err.Error())
}

func TestLoadEmptyID(t *testing.T) {
	_, err := Load(strings.NewReader("ID\tL1\nS1\t1\n\t2\n"), Options{})
	var ee *EmptyIDError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 3, ee.Line)
}

func TestLoadBlankLineIsEmptyID(t *testing.T) {
	_, err := Load(strings.NewReader("ID\tL1\nS1\t1\n\nS2\t1\n"), Options{})
	var ee *EmptyIDError
	require.True(t, errors.As(err, &ee))
}

func TestLoadCapacity(t *testing.T) {
	in := "ID\tL1\nA\t1\nB\t1\nC\t1\n"
	_, err := Load(strings.NewReader(in), Options{MaxRows: 2})
	var ce *CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 2, ce.Limit)

	tbl, err := Load(strings.NewReader(in), Options{MaxRows: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
}

func TestLoadReportsProgress(t *testing.T) {
	var seen []int
	_, err := Load(strings.NewReader("ID\tL1\nA\t1\nB\t2\n"), Options{OnRow: func(n int) { seen = append(seen, n) }})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestLoadCollapsesRepeatedTabs(t *testing.T) {
	tbl, err := Load(strings.NewReader("ID\t\tL1\tL2\nS1\t1\t\t2\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, tbl.Calls(0))
}
